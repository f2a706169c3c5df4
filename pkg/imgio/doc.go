/*
Package imgio moves raster images between files and the flat byte buffers the
scramble package operates on.

A decoded image is reduced to its raw pixel bytes plus a Layout tag and its
dimensions. The transforms never look at any of that metadata; it exists only
so a valid image can be reassembled afterwards. Grayscale images keep their
single channel, and everything else is normalized to 8-bit RGBA so the byte
view is lossless.

Saving picks the format from the output extension. PNG is lossless and is the
default when the path has no extension. JPEG output is supported for parity
with plain viewers, but JPEG quantizes pixel data, so scrambled bytes written
as JPEG will not survive a decrypt round trip. The .pxr container stores the
header and raw bytes verbatim and is the safe choice for scrambled output.
*/
package imgio
