package walkdog

import (
	"fmt"

	"github.com/vovakirdan/walk-the-dog/internal/config"
	"github.com/vovakirdan/walk-the-dog/internal/core"
	"github.com/vovakirdan/walk-the-dog/internal/engine"
	"github.com/vovakirdan/walk-the-dog/internal/games/walkdog/redhatboy"
)

type fakeImage struct {
	name string
	w, h int
}

func (f fakeImage) Width() int { return f.w }
func (f fakeImage) Height() int { return f.h }

// recorder is a Renderer that logs every call as a string.
type recorder struct {
	calls []string
}

func (r *recorder) Clear(rect core.Rect) {
	r.calls = append(r.calls, fmt.Sprintf("clear %v", rect))
}

func (r *recorder) DrawImage(img engine.Image, frame, dest core.Rect) {
	name := "?"
	if f, ok := img.(fakeImage); ok {
		name = f.name
	}
	r.calls = append(r.calls, fmt.Sprintf("image %s %v -> %v", name, frame, dest))
}

func (r *recorder) DrawRect(rect core.Rect) {
	r.calls = append(r.calls, fmt.Sprintf("rect %v", rect))
}

func (r *recorder) DrawText(text string, at core.Point) {
	r.calls = append(r.calls, fmt.Sprintf("text %q %v", text, at))
}

func tileSheet() *engine.SpriteSheet {
	sheet := engine.Sheet{Frames: map[string]engine.Cell{
		"13.png": {Frame: engine.SheetRect{X: 0, W: 128, H: 93}},
		"14.png": {Frame: engine.SheetRect{X: 128, W: 128, H: 93}},
		"15.png": {Frame: engine.SheetRect{X: 256, W: 128, H: 93}},
	}}
	return engine.NewSpriteSheet(sheet, fakeImage{name: "tiles", w: 384, h: 93})
}

func testKit(solid bool) Kit {
	layout := NewLayout(config.DefaultRunnerConfig().World)
	layout.SolidBarriers = solid
	return Kit{
		Stone:  fakeImage{name: "stone", w: 90, h: 54},
		Tiles:  tileSheet(),
		Layout: layout,
	}
}

// testBoy has a 120x120 cell with no offset for every animation frame.
func testBoy() *redhatboy.RedHatBoy {
	p := redhatboy.DefaultPhysics()
	sheet := engine.Sheet{Frames: make(map[string]engine.Cell)}
	for _, name := range redhatboy.FrameNames(p) {
		sheet.Frames[name] = engine.Cell{
			Frame:            engine.SheetRect{W: 120, H: 120},
			SpriteSourceSize: engine.SheetRect{W: 120, H: 120},
		}
	}
	return redhatboy.New(p, sheet, fakeImage{name: "rhb", w: 1440, h: 600}, nil, nil, nil)
}

func testRules() WorldRules {
	return WorldRules{
		Canvas:          core.NewRect(0, 0, 600, 600),
		TimelineMinimum: 1000,
		ObstacleBuffer:  20,
	}
}

func testWalk(seed int64) *Walk {
	return NewWalk(testBoy(), fakeImage{name: "bg", w: 1200, h: 600}, NewGenerator(testKit(true), seed), testRules())
}

// fakeUI is an engine.Button that counts calls.
type fakeUI struct {
	*engine.Button
	shown, hidden int
}

func newFakeUI() *fakeUI {
	return &fakeUI{Button: engine.NewButton()}
}

func (u *fakeUI) ShowRestart() <-chan struct{} {
	u.shown++
	return u.Button.ShowRestart()
}

func (u *fakeUI) HideRestart() {
	u.hidden++
	u.Button.HideRestart()
}
