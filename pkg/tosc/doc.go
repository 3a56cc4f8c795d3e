// Package tosc implements the TouchOSC layout container format: a zlib stream
// whose payload is an XML document.
//
// The package is deliberately small and free of file-system policy. It offers
// three groups of functions:
//
//   - Detection: IsContainer and IsContainerHeader classify a file by its
//     two-byte zlib header without reading the rest of it.
//   - Codec: Compress and Decompress transcode between container and payload
//     bytes. Without XML rewriting the two are exact inverses.
//   - Normalization: Indent and Shrink rewrite only whitespace-only text
//     between elements; element names, attributes, text, comments and
//     processing instructions are kept.
//
// Default output names for both directions are derived by DefaultXMLPath and
// DefaultContainerPath.
package tosc
