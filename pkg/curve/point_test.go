package curve

import (
	crand "crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-secp256k1-math/pkg/field"
)

func randomScalar(t *testing.T) *big.Int {
	t.Helper()
	k, err := crand.Int(crand.Reader, n)
	require.NoError(t, err)
	return k
}

func TestGenerator(t *testing.T) {
	g := Generator()

	t.Run("is on the curve", func(t *testing.T) {
		assert.True(t, IsOnCurve(g.X(), g.Y()))
	})

	t.Run("has the standard coordinates", func(t *testing.T) {
		assert.Equal(t, generatorX, g.X().Hex())
		assert.Equal(t,
			"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
			g.Y().Hex())
	})

	t.Run("y is even", func(t *testing.T) {
		assert.True(t, g.Y().IsEven())
	})
}

func TestNewPoint(t *testing.T) {
	t.Run("accepts the generator coordinates", func(t *testing.T) {
		g := Generator()
		p, err := NewPoint(g.X(), g.Y())
		require.NoError(t, err)
		assert.True(t, p.Equal(g))
	})

	t.Run("rejects off-curve coordinates", func(t *testing.T) {
		_, err := NewPoint(field.NewInt64(1), field.NewInt64(1))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPointNotOnCurve)

		var pe *PointError
		require.True(t, errors.As(err, &pe))
		assert.True(t, pe.X.Equal(field.NewInt64(1)))
	})
}

func TestIdentity(t *testing.T) {
	g := Generator()

	t.Run("absorbs on the right", func(t *testing.T) {
		sum, err := g.Add(Identity())
		require.NoError(t, err)
		assert.True(t, sum.Equal(g))
	})

	t.Run("absorbs on the left", func(t *testing.T) {
		sum, err := Identity().Add(g)
		require.NoError(t, err)
		assert.True(t, sum.Equal(g))
	})

	t.Run("identity plus identity", func(t *testing.T) {
		sum, err := Identity().Add(Identity())
		require.NoError(t, err)
		assert.True(t, sum.IsIdentity())
	})
}

func TestNegation(t *testing.T) {
	g := Generator()

	sum, err := g.Add(g.Negate())
	require.NoError(t, err)
	assert.True(t, sum.IsIdentity())

	assert.True(t, Identity().Negate().IsIdentity())
}

func TestDoubling(t *testing.T) {
	g := Generator()

	double, err := g.Add(g)
	require.NoError(t, err)

	assert.False(t, double.IsIdentity())
	assert.True(t, double.Equal(g.ScalarMult(big.NewInt(2))))
	assert.True(t, IsOnCurve(double.X(), double.Y()))
}

func TestScalarMult(t *testing.T) {
	g := Generator()

	t.Run("zero yields the identity", func(t *testing.T) {
		assert.True(t, g.ScalarMult(big.NewInt(0)).IsIdentity())
	})

	t.Run("one yields the point itself", func(t *testing.T) {
		assert.True(t, g.ScalarMult(big.NewInt(1)).Equal(g))
	})

	t.Run("the group order yields the identity", func(t *testing.T) {
		assert.True(t, g.ScalarMult(Order()).IsIdentity())
	})

	t.Run("order plus one wraps to the point", func(t *testing.T) {
		k := new(big.Int).Add(Order(), big.NewInt(1))
		assert.True(t, g.ScalarMult(k).Equal(g))
	})

	t.Run("negative scalars reduce into range", func(t *testing.T) {
		// -1 = n-1 mod n, so (-1)*G must be -G.
		assert.True(t, g.ScalarMult(big.NewInt(-1)).Equal(g.Negate()))
	})

	t.Run("linearity", func(t *testing.T) {
		a := randomScalar(t)
		b := randomScalar(t)

		sum := new(big.Int).Add(a, b)
		sum.Mod(sum, Order())

		lhs := g.ScalarMult(sum)
		rhs, err := g.ScalarMult(a).Add(g.ScalarMult(b))
		require.NoError(t, err)
		assert.True(t, lhs.Equal(rhs))
	})

	t.Run("scalar of the identity stays the identity", func(t *testing.T) {
		assert.True(t, Identity().ScalarMult(randomScalar(t)).IsIdentity())
	})
}

func TestLiftX(t *testing.T) {
	g := Generator()

	t.Run("recovers the generator", func(t *testing.T) {
		p, ok := LiftX(g.X())
		require.True(t, ok)
		assert.True(t, p.Equal(g))
		assert.True(t, p.Y().IsEven())
	})

	t.Run("recovers arbitrary points up to parity", func(t *testing.T) {
		p := g.ScalarMult(randomScalar(t))
		lifted, ok := LiftX(p.X())
		require.True(t, ok)
		assert.True(t, lifted.Equal(p) || lifted.Equal(p.Negate()))
		assert.True(t, lifted.Y().IsEven())
	})

	t.Run("reports absence for a non-residue x", func(t *testing.T) {
		// Roughly half of all x-values have no point; scan small
		// integers until one shows up.
		for i := int64(1); i <= 100; i++ {
			if _, ok := LiftX(field.NewInt64(i)); !ok {
				return
			}
		}
		t.Fatal("no absent x found among 1..100")
	})
}

func TestInconsistentPoints(t *testing.T) {
	// Two "points" sharing an x whose y's are neither equal nor
	// negations. Only constructible inside the package; the public
	// constructors reject them.
	x := field.NewInt64(1)
	p := Point{x: x, y: field.NewInt64(1)}
	q := Point{x: x, y: field.NewInt64(2)}

	_, err := p.Add(q)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInconsistentPoints)
}

func TestOrderConstants(t *testing.T) {
	t.Run("half order is floor(n/2)", func(t *testing.T) {
		doubled := new(big.Int).Lsh(HalfOrder(), 1)
		doubled.Add(doubled, big.NewInt(1)) // n is odd
		assert.Zero(t, doubled.Cmp(Order()))
	})

	t.Run("accessors hand out copies", func(t *testing.T) {
		Order().SetInt64(0)
		HalfOrder().SetInt64(0)
		assert.NotZero(t, Order().Sign())
		assert.NotZero(t, HalfOrder().Sign())
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "Point(infinity)", Identity().String())
	assert.Contains(t, Generator().String(), generatorX)
}
