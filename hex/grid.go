package hex

import "cogentcore.org/core/math32"

// GridOffsets lays out rows*cols markers centred on the origin, row-major:
// index i sits at row i/cols, column i%cols.
func GridOffsets(rows, cols int, spacing float32) []math32.Vector3 {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	out := make([]math32.Vector3, 0, rows*cols)
	midR := float32(rows-1) / 2
	midC := float32(cols-1) / 2
	for i := 0; i < rows*cols; i++ {
		row, col := i/cols, i%cols
		out = append(out, math32.Vec3((float32(col)-midC)*spacing, 0, (float32(row)-midR)*spacing))
	}
	return out
}
