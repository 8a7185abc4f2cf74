// Package fabric defines shared constants used by the topology builders,
// ensuring consistent validation and error context across both families.
package fabric

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the builder name for context.
//-----------------------------------------------------------------------------

const (
	// MethodResolve is the canonical name for the parameter resolver.
	MethodResolve = "Resolve"
	// MethodBuildClos is the canonical name for the Clos builder.
	MethodBuildClos = "BuildClos"
	// MethodBuildSlepian is the canonical name for the Slepian builder.
	MethodBuildSlepian = "BuildSlepian"
	// MethodBuild is the canonical name for the family-tagged entry point.
	MethodBuild = "Build"
	// MethodValidate is the canonical name for Model.Validate.
	MethodValidate = "Validate"
)

//-----------------------------------------------------------------------------
// Stage Counts
//-----------------------------------------------------------------------------

// MinStages is the smallest stage count any level may carry. A 3-stage
// fabric is the base case of every recursive construction.
const MinStages = 3

// StageStep is the stage reduction per nesting level: each nested network
// replaces one middle stage by a fabric two stages shorter.
const StageStep = 2

//-----------------------------------------------------------------------------
// Display
//-----------------------------------------------------------------------------

// CrosspointPrecision is the number of decimal places used when presenting
// crosspoint counts.
const CrosspointPrecision = 2
