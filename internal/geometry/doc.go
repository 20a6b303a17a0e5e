// Package geometry holds the mesh data model, the binary mesh codec
// and the fallback unit cube.
//
// Real geometry extraction belongs to an external Importer. When the
// importer reports ErrUnavailable, the converter emits the unit cube
// instead; that fallback is first-class, testable behavior.
package geometry
