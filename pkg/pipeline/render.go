package pipeline

import (
	"fmt"

	"github.com/matzehuels/figstyle/pkg/render/plotfig"
)

// Render encodes fig in every format. dpi applies to raster formats; zero
// means the figure's save DPI.
func Render(fig *plotfig.Figure, formats []string, dpi float64) (map[string][]byte, error) {
	if err := ValidateFormats(formats); err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(formats))
	for _, f := range formats {
		data, err := fig.Bytes(f, dpi)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", f, err)
		}
		out[f] = data
	}
	return out, nil
}
