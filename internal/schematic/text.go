package schematic

import (
	"bufio"
	"io"
	"strconv"

	"github.com/go-theft-craft/schematic/internal/world"
)

// WriteText dumps the block ids of s as plain text: a "-- layer N --" line
// per layer, bottom first, followed by one line of space separated ids per
// row. Data bits and payloads are not written.
func WriteText(w io.Writer, s *world.Stack) error {
	bw := bufio.NewWriter(w)
	for z := 0; z < s.Layers(); z++ {
		layer, err := s.Layer(z)
		if err != nil {
			return err
		}
		bw.WriteString("-- layer ")
		bw.WriteString(strconv.Itoa(z))
		bw.WriteString(" --\n")

		for y := 0; y < layer.Height(); y++ {
			for x := 0; x < layer.Width(); x++ {
				if x > 0 {
					bw.WriteByte(' ')
				}
				b, err := layer.At(x, y)
				if err != nil {
					return err
				}
				bw.WriteString(strconv.Itoa(int(b.ID)))
			}
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
