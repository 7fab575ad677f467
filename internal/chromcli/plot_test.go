package chromcli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cwbudde/algo-chrom/chrom/layout"
	"github.com/cwbudde/algo-chrom/chrom/pipeline"
	"github.com/cwbudde/algo-chrom/chrom/series"
	"github.com/cwbudde/algo-chrom/internal/testutil"
)

func TestRenderPNG(t *testing.T) {
	x := testutil.Linspace(0, 10, 200)
	y := testutil.Chromatogram(x, 0,
		testutil.GaussianPeak{Center: 3, Height: 10, Sigma: 0.2},
		testutil.GaussianPeak{Center: 6, Height: 5, Sigma: 0.3},
	)
	res := pipeline.Run([]series.Series{{Name: "FID", X: x, Y: y}}, nil)

	var buf bytes.Buffer
	if err := RenderPNG(&buf, res, PlotOptions{Width: 640, Height: 320, Title: "test"}); err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatal("output is not a PNG")
	}
}

func TestRenderPNGNothingToPlot(t *testing.T) {
	res := pipeline.Run([]series.Series{{X: []float64{1}, Y: []float64{1}}}, nil)
	err := RenderPNG(&bytes.Buffer{}, res, PlotOptions{Width: 100, Height: 100})
	if !errors.Is(err, ErrNothingToPlot) {
		t.Fatalf("err = %v, want ErrNothingToPlot", err)
	}
}

func TestAnnotationValuesApplyOffsets(t *testing.T) {
	ss := []pipeline.SeriesResult{{X: []float64{0, 10}, Y: []float64{0, 100}}}
	anns := []layout.Placed{
		{X: 5, Y: 50, Text: "left", AX: -40, AY: -40},
		{X: 5, Y: 50, Text: "right", AX: 40, AY: -80},
		{X: 5, Y: 50},
	}

	got := annotationValues(anns, ss, PlotOptions{Width: 400, Height: 200})
	if len(got) != 2 {
		t.Fatalf("got %d labels, want 2", len(got))
	}

	// 10 units over 400 px and 100 units over 200 px.
	testutil.RequireNearlyEqual(t, "left x", got[0].XValue, 4, 1e-12)
	testutil.RequireNearlyEqual(t, "left y", got[0].YValue, 70, 1e-12)
	testutil.RequireNearlyEqual(t, "right x", got[1].XValue, 6, 1e-12)
	testutil.RequireNearlyEqual(t, "right y", got[1].YValue, 90, 1e-12)
}

func TestAnnotationValuesGroupedLabelsSeparate(t *testing.T) {
	x := testutil.Linspace(0, 10, 200)
	y := testutil.Chromatogram(x, 0,
		testutil.GaussianPeak{Center: 5, Height: 10, Sigma: 0.1},
		testutil.GaussianPeak{Center: 5.35, Height: 8, Sigma: 0.1},
	)
	res := pipeline.Run([]series.Series{{Name: "FID", X: x, Y: y}}, nil)
	if len(res.Annotations) < 2 || res.Annotations[0].Group != res.Annotations[1].Group {
		t.Fatalf("want two grouped annotations, got %+v", res.Annotations)
	}
	if res.Annotations[0].AX == res.Annotations[1].AX {
		t.Fatalf("grouped annotations share offset %v", res.Annotations[0].AX)
	}
	if len(res.Annotations) < 2 {
		t.Fatalf("got %d annotations, want at least 2", len(res.Annotations))
	}

	labels := annotationValues(res.Annotations, res.Series, PlotOptions{Width: 640, Height: 320})
	seen := map[[2]float64]string{}
	for _, l := range labels {
		k := [2]float64{l.XValue, l.YValue}
		if prev, ok := seen[k]; ok {
			t.Fatalf("labels %q and %q share position %v", prev, l.Label, k)
		}
		seen[k] = l.Label
	}
}

func TestHexColor(t *testing.T) {
	c := hexColor("#1f77b4")
	if c.R != 0x1f || c.G != 0x77 || c.B != 0xb4 {
		t.Errorf("color = %+v", c)
	}
	if c := hexColor("#12345"); c.R != 0 || c.A != 255 {
		t.Errorf("malformed color = %+v, want black", c)
	}
}
