// Package cmd implements the pvaliases subcommands.
package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/aberges/pvaliases/internal/config"
	"github.com/aberges/pvaliases/internal/dump"
	"github.com/aberges/pvaliases/internal/inventory"
	"github.com/aberges/pvaliases/internal/release"
	"github.com/aberges/pvaliases/internal/render"
)

// Gather finds matching child IOCs, expands their alias templates, and
// saves the PV/alias sets the operator approves.
func Gather(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("gather", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	dryRun := fs.BoolP("dry-run", "d", false, "show expansions without writing files")
	bundle := fs.Bool("archive", false, "pack the output directory into a tar.gz")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: pvaliases gather [flags] <pattern> <hutch>")
	}
	patt, hutch := fs.Arg(0), fs.Arg(1)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	m := inventory.NewMatcher(cfg)
	m.Log = stderr
	recs, err := m.Find(hutch, patt)
	if errors.Is(err, inventory.ErrNoMatches) {
		render.Warn(stdout, fmt.Sprintf("No results found for %q in %s", patt, hutch))
		return nil
	}
	if err != nil {
		return err
	}

	res := release.Resolver{EPICSRoot: cfg.EPICSRoot}
	for i := range recs {
		recs[i].ParentIOC = inventory.ParentIOC(res, recs[i].Dir, recs[i].ID)
	}

	render.Notice(stdout, "Found the following:")
	fmt.Fprintln(stdout, render.RecordsTable(recs, hutch == inventory.Wildcard))

	proceed := true
	if err := confirm("Proceed?", &proceed); err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	render.Warn(stdout, "Skipping disabled child IOCs")
	for _, rec := range recs {
		if rec.Disable {
			continue
		}
		if err := gatherIOC(res, rec, *dryRun, *bundle, stdout, stderr); err != nil {
			return err
		}
	}
	return nil
}

func gatherIOC(res release.Resolver, rec inventory.Record, dryRun, bundle bool, stdout, stderr io.Writer) error {
	pairs, err := res.StartupAliases(rec.Dir, rec.ID)
	if err != nil {
		var nf *release.NotFoundError
		if errors.As(err, &nf) {
			fmt.Fprintln(stderr, nf.Error())
			return nil
		}
		return err
	}
	if len(pairs) == 0 {
		render.Warn(stdout, fmt.Sprintf("No alias substitutions in %s", rec.ID))
		return nil
	}

	render.Notice(stdout, "The following substitutions were found in the st.cmd:")
	fmt.Fprintln(stdout, render.PairsTable(pairs))

	sess := &session{dest: defaultDest(rec.ID), dryRun: dryRun}
	if !dryRun {
		if err := confirmDefaultNo("Save every set without further prompting?", &sess.saveAll); err != nil {
			return err
		}
		sess.showPVs = !sess.saveAll
	} else {
		sess.showPVs = true
	}

	for i, p := range pairs {
		lines, err := res.ExpandTemplate(rec.ParentIOC, p.Record, p.Alias)
		if err != nil {
			var nf *release.NotFoundError
			if errors.As(err, &nf) {
				fmt.Fprintln(stderr, nf.Error())
				return nil
			}
			return err
		}
		if err := sess.handleSet(i, lines, stdout, stderr); err != nil {
			return err
		}
	}

	if bundle && sess.wrote {
		if err := dump.Bundle(sess.dest, sess.dest+".tar.gz"); err != nil {
			return err
		}
		render.Notice(stdout, "Archived "+sess.dest+".tar.gz")
	}
	return nil
}

// session tracks the operator's choices across the template sets of one
// child IOC so each question is asked at most once.
type session struct {
	dest    string
	dryRun  bool
	saveAll bool
	skipAll bool
	showPVs bool
	asked   bool
	wrote   bool
}

func (s *session) handleSet(idx int, lines []release.TemplateLine, stdout, stderr io.Writer) error {
	if idx == 0 || (s.showPVs && !s.skipAll) {
		fmt.Fprintln(stdout, render.PVTable(lines))
	}
	if s.dryRun || s.skipAll {
		return nil
	}

	if !s.saveAll {
		save := true
		if err := confirm("Save this set?", &save); err != nil {
			return err
		}
		if !save {
			skip := true
			if err := confirm("Skip the remaining sets?", &skip); err != nil {
				return err
			}
			s.skipAll = skip
			s.showPVs = !skip
			return nil
		}
	}

	if !s.asked {
		dest, err := promptDest("Output directory", s.dest)
		if err != nil {
			return err
		}
		s.dest = dest
		s.asked = true
	}

	w := &dump.Writer{Dir: s.dest, Log: stderr}
	path, err := w.WriteSet(idx, lines)
	if err != nil {
		return err
	}
	s.wrote = true
	render.Notice(stdout, "Saved "+path)
	return nil
}
