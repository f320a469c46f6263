// Package ecc is the public face of the short-Weierstrass arithmetic core.
//
// A Group is bound to one curve for its whole life. Points enter and leave in
// affine form; the Jacobian representation is available for callers that
// chain many operations and want to defer the single field inversion.
package ecc

import (
	"context"
	"math/big"
	"sync"

	"go.uber.org/zap"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

type (
	AffinePoint   = curves.AffinePoint
	JacobianPoint = curves.JacobianPoint
	Job           = curves.Job
	Params        = curves.Params
)

// Parameters holds the configuration for a Group.
type Parameters struct {
	Curve   string      // registered curve name, e.g. "secp256k1"; ignored when Domain is set
	Domain  *Params     // custom domain parameters
	Workers int         // batch parallelism, GOMAXPROCS when <= 0
	Logger  *zap.Logger // optional
}

// Group is a curve group together with its batch settings. All arithmetic
// methods of the underlying curve are promoted; a Group is safe for
// concurrent use.
type Group struct {
	*curves.Weierstrass
	workers int
	logger  *zap.Logger
}

// New builds the group described by params. A nil params selects
// secp256k1 with default settings.
func New(params *Parameters) (*Group, error) {
	if params == nil {
		params = &Parameters{}
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		c   *curves.Weierstrass
		err error
	)
	switch {
	case params.Domain != nil:
		c, err = curves.New(params.Domain)
	case params.Curve != "":
		c, err = curves.ByName(params.Curve)
	default:
		c, err = curves.ByName(curves.NameSecp256k1)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("curve group ready",
		zap.String("curve", c.Name()),
		zap.Int("bits", c.Params().BitSize),
		zap.Int("workers", params.Workers),
	)
	return &Group{Weierstrass: c, workers: params.Workers, logger: logger}, nil
}

var defaultGroup = sync.OnceValue(func() *Group {
	g, err := New(nil)
	if err != nil {
		panic(err)
	}
	return g
})

// Default returns the shared secp256k1 group.
func Default() *Group {
	return defaultGroup()
}

// Curves lists the registered curve names.
func Curves() []string {
	return curves.Names()
}

// Inverse returns a^-1 mod n in [0, n). It fails with a *DomainError when
// gcd(a, n) != 1 or n is not positive.
func Inverse(a, n *big.Int) (*big.Int, error) {
	return field.Inverse(a, n)
}

// Infinity returns the point at infinity.
func Infinity() AffinePoint {
	return curves.Infinity()
}

// NewAffinePoint returns the finite point (x, y). The coordinates are copied.
func NewAffinePoint(x, y *big.Int) AffinePoint {
	return curves.NewAffinePoint(x, y)
}

// Curve exposes the underlying curve, which also implements curves.Curve.
func (g *Group) Curve() *curves.Weierstrass {
	return g.Weierstrass
}

// Validate rejects points that are neither infinity nor a canonical solution
// of the curve equation. The arithmetic methods do not check membership, so
// untrusted input should pass through here first.
func (g *Group) Validate(p AffinePoint) error {
	if !p.Inf && (p.X == nil || p.Y == nil) || !g.IsOnCurve(p) {
		return &PointError{Curve: g.Name(), Point: p, Err: ErrNotOnCurve}
	}
	return nil
}

// Batch multiplies every job on the group's worker pool and returns the
// results in job order.
func (g *Group) Batch(ctx context.Context, jobs []Job) ([]AffinePoint, error) {
	results, err := g.BatchMultiply(ctx, jobs, g.workers, g.logger)
	if err != nil {
		g.logger.Warn("batch multiply failed",
			zap.String("curve", g.Name()),
			zap.Int("jobs", len(jobs)),
			zap.Error(err),
		)
		return nil, err
	}
	return results, nil
}
