package fighter

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rect struct {
	x, y, w, h int
	c          color.Color
}

type recordingRenderer struct {
	rects []rect
}

func (r *recordingRenderer) FillRect(x, y, w, h int, c color.Color) {
	r.rects = append(r.rects, rect{x, y, w, h, c})
}

func TestRenderIdleFighter(t *testing.T) {
	f := newTestFighter(40)
	f.TakeDamage(10)

	r := &recordingRenderer{}
	f.Render(r)

	require.Len(t, r.rects, 3)
	assert.Equal(t, rect{40, groundY - 100, 50, 100, PlayerOneColor}, r.rects[0])
	assert.Equal(t, rect{40, groundY - 120, 50, 10, HealthBarBackground}, r.rects[1])
	assert.Equal(t, rect{40, groundY - 120, 45, 10, HealthBarForeground}, r.rects[2])
}

func TestRenderPlayerTwoColor(t *testing.T) {
	f := New(0, groundY, flatGround(groundY), false)
	r := &recordingRenderer{}
	f.Render(r)

	require.NotEmpty(t, r.rects)
	assert.Equal(t, PlayerTwoColor, r.rects[0].c)
}

func TestRenderSwordOnFacingSide(t *testing.T) {
	right := newTestFighter(100)
	_, err := right.Attack(newTestFighter(400))
	require.NoError(t, err)

	r := &recordingRenderer{}
	right.Render(r)
	require.Len(t, r.rects, 4)
	assert.Equal(t, rect{150, groundY - 80, 50, 10, SwordColor}, r.rects[3])

	left := newTestFighter(100)
	left.MoveLeft()
	left.Update()
	left.Stop()
	_, err = left.Attack(newTestFighter(400))
	require.NoError(t, err)

	r = &recordingRenderer{}
	left.Render(r)
	require.Len(t, r.rects, 4)
	assert.Equal(t, rect{left.X() - 50, groundY - 80, 50, 10, SwordColor}, r.rects[3])
}

func TestRenderEmptyHealthBar(t *testing.T) {
	f := newTestFighter(0)
	f.TakeDamage(99)

	r := &recordingRenderer{}
	f.Render(r)
	require.Len(t, r.rects, 3)
	assert.Equal(t, 0, r.rects[2].w, "one health point rounds down to nothing")
}

func TestRenderDeadFighterDrawsNothing(t *testing.T) {
	f := newTestFighter(0)
	f.TakeDamage(100)

	r := &recordingRenderer{}
	f.Render(r)
	assert.Empty(t, r.rects)
}
