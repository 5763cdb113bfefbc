package booking

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestQuoteAllCombinations(t *testing.T) {
	t.Parallel()
	for _, opt := range Tiers() {
		for _, addOn := range []bool{false, true} {
			b := Quote(Selection{Tier: opt.ID, AddOn: addOn})
			base := opt.Rate
			if opt.PerNight {
				base = opt.Rate * Nights
			}
			var extra int64
			if addOn {
				extra = 75*Nights + 200
			}
			require.Equal(t, base, b.Base, "%s addon=%v", opt.ID, addOn)
			require.Equal(t, int64(99), b.PlatformFee)
			require.Equal(t, extra, b.AddOn)
			require.Equal(t, base+99+extra, b.Total, "%s addon=%v", opt.ID, addOn)
		}
	}
}

func TestQuoteKnownTotals(t *testing.T) {
	t.Parallel()
	require.Equal(t, int64(4124), Quote(Selection{Tier: TierClassic, AddOn: true}).Total)
	require.Equal(t, int64(3699), Quote(Selection{Tier: TierClassic}).Total)
	require.Equal(t, int64(599), Quote(Selection{Tier: TierDayCare}).Total)
	require.Equal(t, int64(4899), Quote(Selection{Tier: TierElite}).Total)
	require.Equal(t, int64(425), AddOnPrice())
}

func TestQuoteIsIdempotent(t *testing.T) {
	t.Parallel()
	sel := Selection{Tier: TierElite, AddOn: true}
	require.Equal(t, Quote(sel), Quote(sel))
}

func TestQuoteUnknownTierPricesAsClassic(t *testing.T) {
	t.Parallel()
	require.Equal(t, Quote(DefaultSelection()), Quote(Selection{Tier: "platinum"}))
}

func TestDefaultSelection(t *testing.T) {
	t.Parallel()
	sel := DefaultSelection()
	require.Equal(t, TierClassic, sel.Tier)
	require.False(t, sel.AddOn)
}

func TestParseTier(t *testing.T) {
	t.Parallel()
	tier, ok := ParseTier(" DayCare ")
	require.True(t, ok)
	require.Equal(t, TierDayCare, tier)
	_, ok = ParseTier("weekly")
	require.False(t, ok)
}

func TestDayCareHidesDatesAndInsurance(t *testing.T) {
	t.Parallel()
	dc := Quote(Selection{Tier: TierDayCare})
	require.False(t, dc.ShowsDates())
	require.False(t, dc.IncludesInsurance())
	require.Equal(t, "Day Care × 1 slot", dc.BaseLabel())

	cl := Quote(Selection{Tier: TierClassic})
	require.True(t, cl.ShowsDates())
	require.True(t, cl.IncludesInsurance())
	require.Equal(t, "Classic Stay × 3 nights", cl.BaseLabel())
}

func TestLinesOmitUnselectedAddOn(t *testing.T) {
	t.Parallel()
	require.Len(t, Quote(Selection{Tier: TierElite}).Lines(), 2)
	lines := Quote(Selection{Tier: TierElite, AddOn: true}).Lines()
	require.Len(t, lines, 3)
	require.Equal(t, Line{Label: "Active Care Package", Amount: 425}, lines[2])
}

func TestWriteReceiptGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, opt := range Tiers() {
		for _, addOn := range []bool{false, true} {
			name := fmt.Sprintf("receipt_%s", opt.ID)
			if addOn {
				name += "_addon"
			}
			var buf bytes.Buffer
			require.NoError(t, WriteReceipt(&buf, Quote(Selection{Tier: opt.ID, AddOn: addOn}), "₹"))
			g.Assert(t, name, buf.Bytes())
		}
	}
}
