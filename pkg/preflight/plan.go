package preflight

// InputKind is the representation a command expects to read.
type InputKind int

const (
	// AnyInput skips the format check.
	AnyInput InputKind = iota
	// ContainerInput requires a compressed container (extract direction).
	ContainerInput
	// PlainInput requires anything but a container (pack direction).
	PlainInput
)

// Plan lists the checks Run performs before a transcoding command reads its
// input payload.
type Plan struct {
	InputPath  string
	OutputPath string

	// Force disables the overwrite guard for an existing output file.
	Force bool
	// Input selects the format check applied to InputPath.
	Input InputKind
	// OutputWritable verifies that the output directory exists and accepts writes.
	OutputWritable bool
}
