package media

import (
	"image"
	"testing"
)

func TestScaleDownKeepsSmallImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 300, 200))

	out := scaleDown(src, maxAvatarDim)
	if out != src {
		t.Error("images within bounds must pass through untouched")
	}
}

func TestScaleDownClampsLongEdge(t *testing.T) {
	cases := []struct {
		w, h         int
		wantW, wantH int
	}{
		{1024, 512, 512, 256},
		{512, 1024, 256, 512},
		{2000, 2000, 512, 512},
	}

	for _, tc := range cases {
		src := image.NewRGBA(image.Rect(0, 0, tc.w, tc.h))
		out := scaleDown(src, maxAvatarDim)
		b := out.Bounds()
		if b.Dx() != tc.wantW || b.Dy() != tc.wantH {
			t.Errorf("scaleDown(%dx%d) = %dx%d, want %dx%d",
				tc.w, tc.h, b.Dx(), b.Dy(), tc.wantW, tc.wantH)
		}
	}
}
