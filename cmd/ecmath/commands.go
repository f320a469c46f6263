package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

type curveInfo struct {
	Name string `json:"name"`
	Bits int    `json:"bits"`
	P    string `json:"p"`
	A    string `json:"a"`
	B    string `json:"b"`
	N    string `json:"n"`
}

func (a *app) curvesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "List the registered curves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out []curveInfo
			for _, name := range ecc.Curves() {
				p, err := curves.ParamsByName(name)
				if err != nil {
					return err
				}
				out = append(out, curveInfo{
					Name: p.Name,
					Bits: p.BitSize,
					P:    "0x" + p.P.Text(16),
					A:    "0x" + p.A.Text(16),
					B:    "0x" + p.B.Text(16),
					N:    "0x" + p.N.Text(16),
				})
			}
			return writeJSON(cmd, out)
		},
	}
}

type pointResult struct {
	Curve  string        `json:"curve"`
	Result ecc.PointJSON `json:"result"`
}

func (a *app) mulCmd() *cobra.Command {
	var k, x, y string

	cmd := &cobra.Command{
		Use:   "mul",
		Short: "Compute k*P (P defaults to the base point)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.group()
			if err != nil {
				return err
			}
			scalar, err := ecc.ParseInt(k)
			if err != nil {
				return fmt.Errorf("--k: %w", err)
			}

			p := g.Generator()
			if x != "" || y != "" {
				if p, err = a.point(g, x, y); err != nil {
					return err
				}
			}

			r := g.FastMultiply(p, scalar)
			a.logger.Debug("mul", zap.String("curve", g.Name()), zap.Stringer("point", p), zap.Stringer("result", r))
			return writeJSON(cmd, pointResult{Curve: g.Name(), Result: ecc.EncodePoint(r)})
		},
	}

	cmd.Flags().StringVar(&k, "k", "", "scalar, decimal or 0x hex, may be negative")
	cmd.Flags().StringVar(&x, "x", "", "x coordinate of P, or inf")
	cmd.Flags().StringVar(&y, "y", "", "y coordinate of P")
	cmd.MarkFlagRequired("k")
	return cmd
}

func (a *app) addCmd() *cobra.Command {
	var x1, y1, x2, y2 string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Compute P + Q",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.group()
			if err != nil {
				return err
			}
			p, err := a.point(g, x1, y1)
			if err != nil {
				return fmt.Errorf("P: %w", err)
			}
			q, err := a.point(g, x2, y2)
			if err != nil {
				return fmt.Errorf("Q: %w", err)
			}

			r := g.FastAdd(p, q)
			a.logger.Debug("add", zap.String("curve", g.Name()), zap.Stringer("result", r))
			return writeJSON(cmd, pointResult{Curve: g.Name(), Result: ecc.EncodePoint(r)})
		},
	}

	cmd.Flags().StringVar(&x1, "x1", "", "x coordinate of P, or inf")
	cmd.Flags().StringVar(&y1, "y1", "", "y coordinate of P")
	cmd.Flags().StringVar(&x2, "x2", "", "x coordinate of Q, or inf")
	cmd.Flags().StringVar(&y2, "y2", "", "y coordinate of Q")
	return cmd
}

type inverseResult struct {
	A       string `json:"a"`
	Modulus string `json:"modulus"`
	Inverse string `json:"inverse"`
}

func (a *app) invCmd() *cobra.Command {
	var av, nv string

	cmd := &cobra.Command{
		Use:   "inv",
		Short: "Compute a^-1 mod n (n defaults to the curve's field prime)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := ecc.ParseInt(av)
			if err != nil {
				return fmt.Errorf("--a: %w", err)
			}

			var n *big.Int
			if nv != "" {
				if n, err = ecc.ParseInt(nv); err != nil {
					return fmt.Errorf("--n: %w", err)
				}
			} else {
				g, err := a.group()
				if err != nil {
					return err
				}
				n = g.Domain().P
			}

			inv, err := ecc.Inverse(x, n)
			if err != nil {
				return err
			}
			return writeJSON(cmd, inverseResult{A: x.String(), Modulus: n.String(), Inverse: inv.String()})
		},
	}

	cmd.Flags().StringVar(&av, "a", "", "value to invert, decimal or 0x hex")
	cmd.Flags().StringVar(&nv, "n", "", "modulus, defaults to the field prime of --curve")
	cmd.MarkFlagRequired("a")
	return cmd
}

// point parses and validates a point supplied on the command line.
func (a *app) point(g *ecc.Group, x, y string) (ecc.AffinePoint, error) {
	p, err := ecc.ParsePoint(x, y)
	if err != nil {
		return ecc.AffinePoint{}, err
	}
	if err := g.Validate(p); err != nil {
		a.logger.Info("rejected point", zap.String("curve", g.Name()), zap.Error(err))
		return ecc.AffinePoint{}, err
	}
	return p, nil
}
