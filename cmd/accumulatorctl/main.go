// Command accumulatorctl is a thin demonstration CLI over the
// accumulator module, in the style of the teacher's gnark-setup command:
// one cli.App, one Commands tree, structured logging via zerolog instead
// of fmt.Println for anything beyond the final human-facing result.
//
// Each subcommand is self-contained — it builds its own trusted setup and
// accumulator in-process and prints the outcome — because this module has
// no persistence layer for a setup or a set across invocations; that
// belongs to whatever system embeds this module as a library, not to this
// ambient CLI.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/chain-labs/expraccum/accumulator"
	"github.com/chain-labs/expraccum/common"
	"github.com/chain-labs/expraccum/curve"
	"github.com/chain-labs/expraccum/setup"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.App{
		Name:      "accumulatorctl",
		Usage:     "exercise the bilinear-pairing set accumulator",
		UsageText: "accumulatorctl [--q N] [--seed S] command [arguments...]",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "q", Value: 16, Usage: "maximum accumulator capacity"},
			&cli.StringFlag{Name: "seed", Value: "s", Usage: "seed string hashed into the trusted setup's secret scalar"},
		},
		Commands: []*cli.Command{
			{
				Name:      "digest",
				Usage:     "digest <elements...>",
				UsageText: "digest 1,2,3 — compute and print the digest of a set",
				Action:    actionDigest,
			},
			{
				Name:      "member",
				Usage:     "member <elements...> -- <x>",
				UsageText: "member 1,2,3 -- 2 — prove and verify membership of x in the set",
				Action:    actionMember,
			},
			{
				Name:      "update",
				Usage:     "update add|delete <elements...> -- <x>",
				UsageText: "update add 1,2,3 -- 4 — apply and verify an add/delete transition",
				Action:    actionUpdate,
			},
			{
				Name:      "intersect",
				Usage:     "intersect <elementsA...> -- <elementsB...>",
				UsageText: "intersect 1,2,3 -- 2,3,4 — generate and verify an intersection proof",
				Action:    actionIntersect,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("accumulatorctl failed")
	}
}

func buildSetup(cCtx *cli.Context) (*setup.TrustedSetup, error) {
	if err := curve.Init(); err != nil {
		return nil, fmt.Errorf("initializing curve: %w", err)
	}
	q := cCtx.Int("q")
	s := common.ScalarFromSeed(cCtx.String("seed"))
	r := common.ScalarFromSeed(cCtx.String("seed") + "-r")

	ts, err := setup.New(s, r, q)
	if err != nil {
		return nil, fmt.Errorf("constructing trusted setup: %w", err)
	}
	log.Info().Int("q", q).Msg("generating trusted setup powers")
	if err := ts.GeneratePowers(); err != nil {
		return nil, fmt.Errorf("generating powers: %w", err)
	}
	return ts, nil
}

func parseElements(csv string) ([]int32, error) {
	if csv == "" {
		return nil, nil
	}
	parts := strings.Split(csv, ",")
	out := make([]int32, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parsing element %q: %w", p, err)
		}
		out = append(out, int32(v))
	}
	return out, nil
}

func buildAccumulator(ts *setup.TrustedSetup, elements []int32) (*accumulator.Accumulator, error) {
	acc := accumulator.New(ts, accumulator.GroupG1)
	for _, x := range elements {
		if _, err := acc.Add(x); err != nil {
			return nil, fmt.Errorf("adding %d: %w", x, err)
		}
	}
	return acc, nil
}

func actionDigest(cCtx *cli.Context) error {
	elements, err := parseElements(strings.Join(cCtx.Args().Slice(), ","))
	if err != nil {
		return err
	}
	ts, err := buildSetup(cCtx)
	if err != nil {
		return err
	}
	acc, err := buildAccumulator(ts, elements)
	if err != nil {
		return err
	}
	fmt.Println(acc.Digest().String())
	return nil
}

func actionMember(cCtx *cli.Context) error {
	args, x, err := splitOnSeparator(cCtx.Args().Slice())
	if err != nil {
		return err
	}
	elements, err := parseElements(strings.Join(args, ","))
	if err != nil {
		return err
	}
	ts, err := buildSetup(cCtx)
	if err != nil {
		return err
	}
	acc, err := buildAccumulator(ts, elements)
	if err != nil {
		return err
	}

	proof := acc.GenerateMembershipProof(x)
	ok := accumulator.VerifyMembership(acc.Digest(), x, proof, ts)
	log.Info().Int32("x", x).Bool("is_member", proof.IsMember).Bool("verified", ok).Msg("membership check")
	fmt.Println(ok)
	return nil
}

func actionUpdate(cCtx *cli.Context) error {
	if cCtx.Args().Len() < 1 {
		return fmt.Errorf("update requires an op: add or delete")
	}
	op := cCtx.Args().Get(0)
	rest := cCtx.Args().Slice()[1:]

	args, x, err := splitOnSeparator(rest)
	if err != nil {
		return err
	}
	elements, err := parseElements(strings.Join(args, ","))
	if err != nil {
		return err
	}
	ts, err := buildSetup(cCtx)
	if err != nil {
		return err
	}
	acc, err := buildAccumulator(ts, elements)
	if err != nil {
		return err
	}

	var proof accumulator.UpdateProof
	switch op {
	case "add":
		proof, err = acc.Add(x)
	case "delete":
		proof, err = acc.Delete(x)
	default:
		return fmt.Errorf("unknown update op %q", op)
	}
	if err != nil {
		return err
	}

	ok := accumulator.VerifyUpdate(proof, ts)
	log.Info().Str("op", op).Int32("x", x).Bool("verified", ok).Msg("update check")
	fmt.Println(ok)
	return nil
}

func actionIntersect(cCtx *cli.Context) error {
	a, b, err := splitArgSets(cCtx.Args().Slice())
	if err != nil {
		return err
	}
	elementsA, err := parseElements(strings.Join(a, ","))
	if err != nil {
		return err
	}
	elementsB, err := parseElements(strings.Join(b, ","))
	if err != nil {
		return err
	}

	ts, err := buildSetup(cCtx)
	if err != nil {
		return err
	}
	accA, err := buildAccumulator(ts, elementsA)
	if err != nil {
		return err
	}
	accB, err := buildAccumulator(ts, elementsB)
	if err != nil {
		return err
	}

	proof, err := accumulator.GenerateIntersectionProof(accA, accB)
	if err != nil {
		return err
	}
	ok := accumulator.VerifyIntersection(accA.Digest(), accB.Digest(), proof, ts)
	log.Info().Bool("verified", ok).Msg("intersection check")
	fmt.Println(ok)
	return nil
}

// splitOnSeparator splits args on a literal "--" and parses the single
// element after it.
func splitOnSeparator(args []string) (before []string, x int32, err error) {
	for i, a := range args {
		if a == "--" {
			if i+1 >= len(args) {
				return nil, 0, fmt.Errorf("missing element after --")
			}
			v, err := strconv.Atoi(args[i+1])
			if err != nil {
				return nil, 0, fmt.Errorf("parsing element %q: %w", args[i+1], err)
			}
			return args[:i], int32(v), nil
		}
	}
	return nil, 0, fmt.Errorf("missing -- separator")
}

// splitArgSets splits args into two comma-joinable groups on a literal "--".
func splitArgSets(args []string) (a, b []string, err error) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:], nil
		}
	}
	return nil, nil, fmt.Errorf("missing -- separator")
}
