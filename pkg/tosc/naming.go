package tosc

import "strings"

// File extensions of the two representations.
const (
	ContainerExt = ".tosc"
	XMLExt       = ".xml"
)

// DefaultXMLPath returns the extraction target for a container path.
func DefaultXMLPath(containerPath string) string {
	return containerPath + XMLExt
}

// DefaultContainerPath returns the packing target for an XML path:
// "name.tosc.xml" and "name.xml" both become "name.tosc", anything else gets
// ".tosc" appended.
func DefaultContainerPath(xmlPath string) string {
	switch {
	case strings.HasSuffix(xmlPath, ContainerExt+XMLExt):
		return strings.TrimSuffix(xmlPath, XMLExt)
	case strings.HasSuffix(xmlPath, XMLExt):
		return strings.TrimSuffix(xmlPath, XMLExt) + ContainerExt
	default:
		return xmlPath + ContainerExt
	}
}
