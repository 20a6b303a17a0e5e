// Package imaging re-encodes texture images referenced by materials.
//
// Re-encoding preserves pixel data: the image is decoded and written
// back in a matching container, never resampled. Results are cached
// per source path so a texture referenced by many materials is only
// decoded once per run.
package imaging
