package navigation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigate_PushAppendsHistory(t *testing.T) {
	c := NewController(0)

	require.NoError(t, c.Navigate(ScreenLogin, ModePush, nil))
	require.NoError(t, c.Navigate(ScreenRegister, ModePush, nil))

	state := c.State()
	assert.Equal(t, ScreenRegister, state.Current)
	assert.Equal(t, []Screen{ScreenSplash, ScreenLogin, ScreenRegister}, state.History)
	assert.False(t, state.Transitioning)
}

func TestNavigate_ResetReplacesHistory(t *testing.T) {
	c := NewController(0)

	require.NoError(t, c.Navigate(ScreenLogin, ModePush, nil))
	require.NoError(t, c.Navigate(ScreenDashboard, ModeReset, nil))

	state := c.State()
	assert.Equal(t, ScreenDashboard, state.Current)
	assert.Equal(t, []Screen{ScreenDashboard}, state.History)
}

func TestNavigate_SameScreenIsNoop(t *testing.T) {
	c := NewController(0)

	require.NoError(t, c.Navigate(ScreenLogin, ModePush, nil))
	require.NoError(t, c.Navigate(ScreenLogin, ModePush, nil))

	state := c.State()
	assert.Equal(t, []Screen{ScreenSplash, ScreenLogin}, state.History)
}

func TestNavigate_SameScreenResetAllowed(t *testing.T) {
	c := NewController(0)

	require.NoError(t, c.Navigate(ScreenDashboard, ModePush, nil))
	require.NoError(t, c.Navigate(ScreenDashboard, ModeReset, nil))

	state := c.State()
	assert.Equal(t, []Screen{ScreenDashboard}, state.History)
}

func TestNavigate_UnknownScreenAndMode(t *testing.T) {
	c := NewController(0)

	assert.ErrorIs(t, c.Navigate(Screen("nonsense"), ModePush, nil), ErrUnknownScreen)
	assert.ErrorIs(t, c.Navigate(ScreenLogin, "slide", nil), ErrUnknownMode)

	state := c.State()
	assert.Equal(t, ScreenSplash, state.Current)
}

func TestNavigate_ParamsReplacedWholesale(t *testing.T) {
	c := NewController(0)

	// Вход в каталог с выбранной категорией.
	require.NoError(t, c.Navigate(ScreenCatalog, ModePush, map[string]string{"category": "Elegant"}))
	assert.Equal(t, "Elegant", c.State().Params["category"])

	// Повторный вход без параметра сбрасывает категорию.
	require.NoError(t, c.Navigate(ScreenDashboard, ModePush, nil))
	require.NoError(t, c.Navigate(ScreenCatalog, ModePush, nil))
	assert.Empty(t, c.State().Params["category"])
}

func TestGoBack_PopsHistory(t *testing.T) {
	c := NewController(0)

	require.NoError(t, c.Navigate(ScreenLogin, ModePush, nil))
	require.NoError(t, c.Navigate(ScreenRegister, ModePush, nil))

	c.GoBack()
	state := c.State()
	assert.Equal(t, ScreenLogin, state.Current)
	assert.Equal(t, []Screen{ScreenSplash, ScreenLogin}, state.History)
}

func TestGoBack_NoopAtRoot(t *testing.T) {
	c := NewController(0)

	c.GoBack()
	state := c.State()
	assert.Equal(t, ScreenSplash, state.Current)
	assert.Len(t, state.History, 1)
}

func TestNavigate_DelayedCommit(t *testing.T) {
	c := NewController(20 * time.Millisecond)
	t.Cleanup(c.Close)

	require.NoError(t, c.Navigate(ScreenLogin, ModePush, nil))

	state := c.State()
	assert.True(t, state.Transitioning)
	assert.Equal(t, ScreenSplash, state.Current)

	assert.Eventually(t, func() bool {
		s := c.State()
		return s.Current == ScreenLogin && !s.Transitioning
	}, time.Second, 5*time.Millisecond)
}

func TestClose_CancelsPendingCommit(t *testing.T) {
	c := NewController(30 * time.Millisecond)

	require.NoError(t, c.Navigate(ScreenLogin, ModePush, nil))
	c.Close()

	time.Sleep(60 * time.Millisecond)
	state := c.State()
	assert.Equal(t, ScreenSplash, state.Current)
	assert.False(t, state.Transitioning)
}

func TestManager_PerUserControllers(t *testing.T) {
	m := NewManager(0)
	t.Cleanup(m.Close)

	ana := m.Get("u1")
	luna := m.Get("u2")
	require.NoError(t, ana.Navigate(ScreenDashboard, ModeReset, nil))

	assert.Equal(t, ScreenDashboard, ana.State().Current)
	assert.Equal(t, ScreenSplash, luna.State().Current)
	assert.Same(t, ana, m.Get("u1"))
}
