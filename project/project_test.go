// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/clonesum/project"
)

type setPath struct {
	set  project.Dataset
	path string
}

func TestProject(t *testing.T) {
	p := project.New()

	sets := []setPath{
		{project.Mixture, "mixture.tab"},
		{project.Samples, "samples.tab"},
		{project.Membership, "membership.tab"},
		{project.Params, "params.tab"},
	}

	for _, s := range sets {
		p.Add(s.set, s.path)
	}
	testProject(t, p, sets)

	name := filepath.Join(t.TempDir(), "tmp-project-for-test.tab")

	p.SetName(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := project.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testProject(t, np, sets)
	if np.Name() != name {
		t.Errorf("name: got %q, want %q", np.Name(), name)
	}

	if prev := np.Add(project.Params, ""); prev != "params.tab" {
		t.Errorf("remove params: got previous %q, want %q", prev, "params.tab")
	}
	if path := np.Path(project.Params); path != "" {
		t.Errorf("remove params: got path %q, want empty", path)
	}
}

func TestDatasets(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"mixture.tab":    "clone\tblock\tfraction\n0\t0\t0.6\n1\t0\t0.4\n",
		"samples.tab":    "point\tblock\tdepth\talt\np1\t0\t100\t30\np2\t0\t100\t20\n",
		"membership.tab": "point\tclone\np1\t0\np2\t1\n",
	}
	p := project.New()
	p.SetName(filepath.Join(dir, "project.tab"))
	for fn, data := range files {
		path := filepath.Join(dir, fn)
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatalf("unable to write %q: %v", fn, err)
		}
	}
	p.Add(project.Mixture, filepath.Join(dir, "mixture.tab"))
	p.Add(project.Samples, filepath.Join(dir, "samples.tab"))

	m, err := p.Mixture()
	if err != nil {
		t.Fatalf("mixture: %v", err)
	}
	if m.Clones() != 2 || m.Blocks() != 1 {
		t.Errorf("mixture: got %d clones, %d blocks, want 2 clones, 1 block", m.Clones(), m.Blocks())
	}

	d, err := p.Samples()
	if err != nil {
		t.Fatalf("samples: %v", err)
	}

	// undefined membership
	member, err := p.Membership(d)
	if err != nil || member != nil {
		t.Errorf("undefined membership: got %v (%v), want nil", member, err)
	}

	p.Add(project.Membership, filepath.Join(dir, "membership.tab"))
	member, err = p.Membership(d)
	if err != nil {
		t.Fatalf("membership: %v", err)
	}
	if !reflect.DeepEqual(member, []int{0, 1}) {
		t.Errorf("membership: got %v, want %v", member, []int{0, 1})
	}

	// default parameters
	pm, err := p.Params()
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	if pm.MinSize() != 9 {
		t.Errorf("params: min size: got %d, want %d", pm.MinSize(), 9)
	}
}

func testProject(t testing.TB, p *project.Project, sets []setPath) {
	t.Helper()

	for _, s := range sets {
		if path := p.Path(s.set); path != s.path {
			t.Errorf("set %s: got path %q, want %q", s.set, path, s.path)
		}
	}
	datasets := make([]project.Dataset, 0, len(sets))
	for _, v := range sets {
		datasets = append(datasets, v.set)
	}

	if ls := p.Sets(); !reflect.DeepEqual(ls, datasets) {
		t.Errorf("sets: got %v, want %v", ls, datasets)
	}
}

func TestReadErrors(t *testing.T) {
	tests := map[string]string{
		"no path field":   "dataset\tfile\nmixture\tm.tab\n",
		"unknown dataset": "dataset\tpath\ntrees\ttrees.tab\n",
		"empty path":      "dataset\tpath\nmixture\t \n",
		"duplicated":      "dataset\tpath\nmixture\ta.tab\nMixture\tb.tab\n",
	}
	for name, data := range tests {
		if _, err := project.ReadTSV(strings.NewReader(data)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestParseDataset(t *testing.T) {
	set, err := project.ParseDataset(" Membership ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set != project.Membership {
		t.Errorf("parse: got %q, want %q", set, project.Membership)
	}
	if _, err := project.ParseDataset("landscape"); err == nil {
		t.Errorf("parse %q: expecting error", "landscape")
	}
}

func TestCheck(t *testing.T) {
	p := project.New()
	p.SetName("project.tab")
	if err := p.Check(project.Mixture); err == nil {
		t.Errorf("check on empty project: expecting error")
	}

	p.Add(project.Mixture, "mixture.tab")
	p.Add(project.Membership, "membership.tab")
	if err := p.Check(project.Mixture); err != nil {
		t.Errorf("check mixture: unexpected error: %v", err)
	}
	if err := p.Check(project.Mixture, project.Membership); err == nil {
		t.Errorf("check membership without samples: expecting error")
	}

	p.Add(project.Samples, "samples.tab")
	if err := p.Check(project.Mixture, project.Membership); err != nil {
		t.Errorf("check membership: unexpected error: %v", err)
	}
}
