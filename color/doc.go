// Package color converts between RGB and HSV, animates hues, and packs
// colors into the 16, 24 and 32-bit pixel formats used by displays and
// texture data.
package color
