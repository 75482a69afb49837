// Package pdipm is the Driver: it wires pkg/problem, pkg/kkt,
// pkg/residual, pkg/decomp and pkg/linesearch together into the
// primal-dual interior-point outer loop.
package pdipm

import (
	"github.com/itohio/pdipm/pkg/kkt"
	"github.com/itohio/pdipm/pkg/linesearch"
	"github.com/itohio/pdipm/pkg/problem"
	"github.com/itohio/pdipm/pkg/residual"
)

// Solver runs the outer loop for a given Config. One Solver may run
// several solves (Start calls) with different problems and dimensions;
// nothing in Config is mutated by Start.
type Solver struct {
	cfg Config
}

// rankedSolver is implemented by decomp.Solver strategies that can report
// the rank they found (decomp.SVD does); used only for diagnostics.
type rankedSolver interface {
	Rank() int
}

// New builds a Solver, applying opts over DefaultConfig().
func New(opts ...Option) *Solver {
	cfg := DefaultConfig()
	ApplyOptions(&cfg, opts...)
	return &Solver{cfg: cfg}
}

// Start runs the primal-dual interior-point method against pr for a
// program with n variables, m inequality constraints and p equality
// constraints:
//
//  1. obtain x0, set lmd0 = Margin*1, nu0 = 0, fetch (A, b)
//  2. check strict inequality feasibility of x0
//  3. form the initial r_dual, r_pri
//  4. repeat: compute eta and the barrier temperature, update r_cent,
//     check termination, assemble the KKT system, solve for the Newton
//     step, run the line search, commit or stop on non-improvement
//  5. call Finalize with the final iterate, exactly once, unless an
//     Argument/Infeasible-start/Numerical-degeneracy/callback error or
//     an error from the KKT decomposition aborted the solve first
func (s *Solver) Start(pr problem.Problem, n, m, p int) error {
	if n <= 0 {
		return ErrInvalidDimension
	}
	cfg := s.cfg
	ws := newWorkspace(n, m, p)

	if err := pr.InitialPoint(ws.x); err != nil {
		return err
	}
	ws.lmd.Fill(cfg.Margin)
	ws.nu.Zero()

	if err := pr.Equality(ws.a, ws.b); err != nil {
		return err
	}

	if err := pr.ObjectiveGrad(ws.x, ws.dfo); err != nil {
		return err
	}
	if m > 0 {
		if err := pr.Inequality(ws.x, ws.fi); err != nil {
			return err
		}
		if err := pr.InequalityGrad(ws.x, ws.df); err != nil {
			return err
		}
		if ws.fi.Max() >= 0 {
			return ErrInfeasibleStart
		}
	}

	residual.Eval(ws.rDual, ws.rCent, ws.rPri, n, m, p, ws.dfo, ws.df, ws.lmd, ws.a, ws.nu, ws.fi, 0, ws.x, ws.b)

	lsBuf := &linesearch.Buffers{
		N: ws.N, Np: n, Mp: m, Pp: p,
		Y: ws.y, Dy: ws.dy, YTrial: ws.yTrial,
		Rt: ws.rt, RtTrial: ws.rtTrial,
		Dfo: ws.dfo, DfoTrial: ws.dfoTrial,
		Fi: ws.fi, FiTrial: ws.fiTrial,
		Df: ws.df, DfTrial: ws.dfTrial,
		A: ws.a, B: ws.b,
	}
	lsParams := linesearch.Params{Alpha: cfg.Alpha, Beta: cfg.Beta, SCoef: cfg.SCoef, BLoop: cfg.BLoop}

	converged := false

	for iter := 0; iter < cfg.Loop; iter++ {
		eta := residual.Gap(ws.fi, ws.lmd, m, cfg.Eps)
		if eta < 0 {
			return ErrNumericalDegeneracy
		}

		var invT float64
		if m > 0 {
			invT = eta / (cfg.Mu * float64(m))
			for i := range ws.rCent {
				ws.rCent[i] = -ws.lmd[i]*ws.fi[i] - invT
			}
		}

		rDualNorm := ws.rDual.Norm()
		rPriNorm := ws.rPri.Norm()

		cfg.Logger.Debug().
			Int("iter", iter).
			Float64("r_dual", rDualNorm).
			Float64("r_pri", rPriNorm).
			Float64("eta", eta).
			Msg("pdipm outer iteration")

		if rDualNorm <= cfg.EpsFeas && rPriNorm <= cfg.EpsFeas && eta <= cfg.Eps {
			converged = true
			break
		}

		if err := pr.ObjectiveHess(ws.x, ws.hx); err != nil {
			return err
		}
		for i := 0; i < m; i++ {
			if err := pr.InequalityHess(ws.x, i, ws.tmpHess); err != nil {
				return err
			}
			ws.hx.AddScaled(ws.lmd[i], ws.tmpHess)
		}
		kkt.Assemble(ws.kktM, n, m, p, ws.hx, ws.lmd, ws.df, ws.fi, ws.a)

		copy(ws.negRt, ws.rt)
		ws.negRt.Scale(-1)

		if err := cfg.Decomp.Solve(ws.kktM, ws.negRt, ws.dy); err != nil {
			return err
		}

		if ranked, ok := cfg.Decomp.(rankedSolver); ok {
			cfg.Logger.Debug().Str("decomp", cfg.Decomp.Name()).Int("rank", ranked.Rank()).Msg("kkt solved")
		} else {
			cfg.Logger.Debug().Str("decomp", cfg.Decomp.Name()).Msg("kkt solved")
		}

		res, err := linesearch.Search(pr, lsParams, lsBuf, invT)
		if err != nil {
			return err
		}

		if !res.Accepted {
			cfg.Logger.Warn().Int("iter", iter).Int("trials", res.TrialsUsed).Msg("line search found no improving step")
			converged = false
			break
		}

		copy(ws.y, ws.yTrial)
		copy(ws.dfo, ws.dfoTrial)
		if m > 0 {
			copy(ws.fi, ws.fiTrial)
			copy(ws.df.RawData(), ws.dfTrial.RawData())
		}
		copy(ws.rt, ws.rtTrial)
	}

	return pr.Finalize(ws.x, ws.lmd, ws.nu, converged)
}
