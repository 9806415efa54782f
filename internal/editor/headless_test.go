package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHeadless(t *testing.T) *Headless {
	t.Helper()
	rt, err := NewHeadless(RuntimeConfig{Mounts: allMounts, Devices: Devices})
	require.NoError(t, err)
	return rt
}

func TestNewHeadlessRequiresCanvas(t *testing.T) {
	_, err := NewHeadless(RuntimeConfig{})
	assert.ErrorIs(t, err, ErrNoCanvas)
}

func TestHeadlessComponentCount(t *testing.T) {
	rt := newHeadless(t)
	assert.Equal(t, 0, rt.ComponentCount())

	require.NoError(t, rt.SetComponents("<div>a</div>\n  <section><p>b</p></section> loose text "))
	assert.Equal(t, 3, rt.ComponentCount())
}

func TestHeadlessReadyClosesOnFirstLoad(t *testing.T) {
	rt := newHeadless(t)
	select {
	case <-rt.Ready():
		t.Fatal("ready before any content")
	default:
	}

	require.NoError(t, rt.SetComponents("<p>x</p>"))
	<-rt.Ready()
	require.NoError(t, rt.SetComponents("<p>y</p>"), "second load must not close twice")
}

func TestHeadlessHistoryDropsRedoTail(t *testing.T) {
	rt := newHeadless(t)
	for _, doc := range []string{"<p>1</p>", "<p>2</p>", "<p>3</p>"} {
		require.NoError(t, rt.SetComponents(doc))
	}

	require.NoError(t, rt.RunCommand(CommandUndo))
	require.NoError(t, rt.RunCommand(CommandUndo))
	assert.Equal(t, "<p>1</p>", rt.HTML())
	require.NoError(t, rt.RunCommand(CommandUndo), "undo at the start is a no-op")
	assert.Equal(t, "<p>1</p>", rt.HTML())

	require.NoError(t, rt.SetComponents("<p>4</p>"))
	require.NoError(t, rt.RunCommand(CommandRedo))
	assert.Equal(t, "<p>4</p>", rt.HTML())

	require.NoError(t, rt.RunCommand(CommandUndo))
	assert.Equal(t, "<p>1</p>", rt.HTML())
}

func TestHeadlessRendersCanonicalMarkup(t *testing.T) {
	rt := newHeadless(t)
	require.NoError(t, rt.SetComponents(`<DIV Class=hero>Hi<p>unclosed</DIV>`))
	assert.Equal(t, `<div class="hero">Hi<p>unclosed</p></div>`, rt.HTML())
}

func TestHeadlessCommandsAndDevices(t *testing.T) {
	rt := newHeadless(t)

	assert.ErrorIs(t, rt.RunCommand("core:fullscreen"), ErrUnknownCommand)
	assert.ErrorIs(t, rt.StopCommand(CommandUndo), ErrUnknownCommand)
	assert.Equal(t, "Desktop", rt.Device())
	assert.ErrorIs(t, rt.SetDevice("Watch"), ErrUnknownDevice)
	assert.NoError(t, rt.SetDevice("Tablet"))
}

func TestHeadlessRenderPanelNeedsMount(t *testing.T) {
	rt, err := NewHeadless(RuntimeConfig{Mounts: Mounts{Canvas: "#gjs"}})
	require.NoError(t, err)
	assert.Error(t, rt.RenderPanel(PanelLayers))
}

func TestHeadlessDestroy(t *testing.T) {
	rt := newHeadless(t)
	require.NoError(t, rt.SetComponents("<p>x</p>"))

	require.NoError(t, rt.Destroy())
	assert.Empty(t, rt.HTML())
	assert.ErrorIs(t, rt.Destroy(), ErrDestroyed)
	assert.ErrorIs(t, rt.SetComponents("<p>y</p>"), ErrDestroyed)
	assert.ErrorIs(t, rt.RunCommand(CommandUndo), ErrDestroyed)
}

func TestHeadlessHistoryLimit(t *testing.T) {
	rt, err := NewHeadless(RuntimeConfig{Mounts: allMounts, HistoryLimit: 3})
	require.NoError(t, err)
	for _, doc := range []string{"<p>1</p>", "<p>2</p>", "<p>3</p>", "<p>4</p>", "<p>5</p>"} {
		require.NoError(t, rt.SetComponents(doc))
	}

	for i := 0; i < 5; i++ {
		require.NoError(t, rt.RunCommand(CommandUndo))
	}
	assert.Equal(t, "<p>3</p>", rt.HTML())

	require.NoError(t, rt.RunCommand(CommandRedo))
	require.NoError(t, rt.RunCommand(CommandRedo))
	assert.Equal(t, "<p>5</p>", rt.HTML())
}

func TestHeadlessDropsRepeatedAttributes(t *testing.T) {
	rt := newHeadless(t)
	require.NoError(t, rt.SetComponents(`<div a="1" b="2" a="3"><span c="x" C="y">t</span></div>`))
	assert.Equal(t, `<div a="1" b="2"><span c="x">t</span></div>`, rt.HTML())
}
