package flow

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jask/tacostay/internal/catalog"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	return NewController(DefaultGraph(), zaptest.NewLogger(t))
}

func walkToHome(t *testing.T, c *Controller) {
	t.Helper()
	require.NoError(t, c.GoTo(ScreenSignup))
	require.NoError(t, c.GoTo(ScreenPetProfile))
	require.NoError(t, c.GoTo(ScreenHome))
}

func TestControllerStartsAtSplash(t *testing.T) {
	t.Parallel()
	c := NewController(nil, nil)
	require.Equal(t, ScreenSplash, c.Screen())
	require.Nil(t, c.Sitter())
}

func TestGoToRefusesSitterScreensWithoutSitter(t *testing.T) {
	t.Parallel()
	c := newTestController(t)
	walkToHome(t, c)

	err := c.GoTo(ScreenSitterDetail)
	require.ErrorIs(t, err, ErrSitterRequired)
	require.Equal(t, ScreenHome, c.Screen())
	require.Nil(t, c.Sitter())
}

func TestGoToRefusesMissingEdge(t *testing.T) {
	t.Parallel()
	c := newTestController(t)
	require.ErrorIs(t, c.GoTo(ScreenHome), ErrNoEdge)
	require.ErrorIs(t, c.GoTo(ScreenSplash), ErrNoEdge)
	require.Equal(t, ScreenSplash, c.Screen())
}

func TestSelectSitterAndAdvance(t *testing.T) {
	t.Parallel()
	c := newTestController(t)
	walkToHome(t, c)
	sitters := catalog.BuiltinSitters()

	require.ErrorIs(t, c.SelectSitterAndAdvance(nil, ScreenSitterDetail), ErrSitterRequired)
	require.Equal(t, ScreenHome, c.Screen())

	require.ErrorIs(t, c.SelectSitterAndAdvance(&sitters[1], ScreenBooking), ErrNoEdge)
	require.Nil(t, c.Sitter(), "refused selection must not leak the sitter")

	require.NoError(t, c.SelectSitterAndAdvance(&sitters[1], ScreenSitterDetail))
	require.Equal(t, ScreenSitterDetail, c.Screen())
	require.Same(t, &sitters[1], c.Sitter())
}

func TestFullForwardWalkAndReturnHome(t *testing.T) {
	t.Parallel()
	c := newTestController(t)
	walkToHome(t, c)
	sitters := catalog.BuiltinSitters()
	require.NoError(t, c.SelectSitterAndAdvance(&sitters[0], ScreenSitterDetail))

	for _, want := range []Screen{ScreenBooking, ScreenBookingConfirm, ScreenOrientation, ScreenPulse, ScreenRating, ScreenHome} {
		require.NoError(t, c.Next())
		require.Equal(t, want, c.Screen())
	}
	require.Same(t, &sitters[0], c.Sitter())
}

func TestBackEdges(t *testing.T) {
	t.Parallel()
	g := DefaultGraph()
	want := map[Screen]Screen{
		ScreenSignup:       ScreenSplash,
		ScreenPetProfile:   ScreenSignup,
		ScreenHome:         ScreenPetProfile,
		ScreenSitterDetail: ScreenHome,
		ScreenBooking:      ScreenSitterDetail,
		ScreenOrientation:  ScreenBookingConfirm,
		ScreenPulse:        ScreenOrientation,
	}
	for _, s := range Screens {
		back, ok := want[s]
		require.Equal(t, ok, g.HasBack(s), s)
		if ok {
			require.Equal(t, back, g[s].Back, s)
		}
	}
}

func TestBackWithoutEdgeIsRefused(t *testing.T) {
	t.Parallel()
	c := newTestController(t)
	walkToHome(t, c)
	sitters := catalog.BuiltinSitters()
	require.NoError(t, c.SelectSitterAndAdvance(&sitters[2], ScreenSitterDetail))
	require.NoError(t, c.Next())
	require.NoError(t, c.Next())
	require.Equal(t, ScreenBookingConfirm, c.Screen())

	require.ErrorIs(t, c.Back(), ErrNoEdge)
	require.Equal(t, ScreenBookingConfirm, c.Screen())
}

func TestRequiresSitter(t *testing.T) {
	t.Parallel()
	for _, s := range []Screen{ScreenSplash, ScreenSignup, ScreenPetProfile, ScreenHome} {
		require.False(t, s.RequiresSitter(), s)
	}
	for _, s := range []Screen{ScreenSitterDetail, ScreenBooking, ScreenBookingConfirm, ScreenOrientation, ScreenPulse, ScreenRating} {
		require.True(t, s.RequiresSitter(), s)
	}
}
