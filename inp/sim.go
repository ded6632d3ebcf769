// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/dirichlet
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" "json"
	ListBcs bool   `json:"listbcs"` // list boundary conditions
	NoWrite bool   `json:"nowrite"` // do not write results
}

// MeshData holds data to read or generate the mesh
type MeshData struct {
	Mshfile string  `json:"mshfile"` // file path of file with mesh data; has priority over "gen"
	Gen     string  `json:"gen"`     // generator: "interval" or "rectangle"
	Nx      int     `json:"nx"`      // number of divisions along x
	Ny      int     `json:"ny"`      // number of divisions along y
	Xmin    float64 `json:"xmin"`    // min x
	Xmax    float64 `json:"xmax"`    // max x
	Ymin    float64 `json:"ymin"`    // min y
	Ymax    float64 `json:"ymax"`    // max y
}

// SpaceData holds function space data
type SpaceData struct {
	Family string `json:"family"` // "CG", "P" or "Lagrange"
	Degree int    `json:"degree"` // polynomial degree: 1 or 2
	Ncomp  int    `json:"ncomp"`  // number of components; 1 => scalar field
}

// ProblemData holds the definition of the linear system A・x = b
type ProblemData struct {
	Form     string  `json:"form"`     // bilinear form: "laplace" or "mass"
	Source   string  `json:"source"`   // name of source function f in ∫ f・v dx
	Strategy string  `json:"strategy"` // bcs enforcement: "apply" or "zerocols"
	Diag     float64 `json:"diag"`     // diagonal value used by "zerocols"
	Time     float64 `json:"time"`     // time at which functions are evaluated
}

// BcData holds Dirichlet boundary condition data
type BcData struct {
	Name   string   `json:"name"`   // name of condition; used in listings
	Where  string   `json:"where"`  // predicate: "on_boundary", "everywhere" or keycode such as "!near:0 !at:1"
	Tag    int      `json:"tag"`    // subdomain id: facet tag in mesh; used if where is empty
	Funcs  []string `json:"funcs"`  // function names; one per component or one for all components
	Method string   `json:"method"` // "topological", "geometric" or "pointwise"
	Sub    int      `json:"sub"`    // 0 => whole space; k > 0 => subspace of component k-1
}

// LinSolData holds data for linear solvers
type LinSolData struct {
	Name string `json:"name"` // "lu" or "chol"
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data        `json:"data"`      // stores global simulation data
	Mesh      MeshData    `json:"mesh"`      // mesh data
	Space     SpaceData   `json:"space"`     // function space data
	Problem   ProblemData `json:"problem"`   // problem data
	Functions FuncsData   `json:"functions"` // stores all boundary condition functions
	Bcs       []*BcData   `json:"bcs"`       // Dirichlet boundary conditions
	LinSol    LinSolData  `json:"linsol"`    // linear solver data

	// derived
	Key     string // simulation key; e.g. poisson01.sim => poisson01 or poisson01.sim + alias => poisson01-alias
	DirOut  string // directory to save results
	EncType string // encoder type
	Msh     *Mesh  // the mesh
}

// ReadSim reads all simulation data from a .sim JSON file
//  alias -- word to be appended to simulation key; e.g. when running multiple simulations
func ReadSim(simfilepath, alias string) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// set default values
	o = new(Simulation)
	o.SetDefault()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	o.Key = io.FnKey(filepath.Base(simfilepath))
	if alias != "" {
		o.Key += "-" + alias
	}

	// post-process
	err = o.PostProcess(dir)
	return
}

// SetDefault sets default values
func (o *Simulation) SetDefault() {
	o.Data.Encoder = "json"
	o.Mesh.Gen = "rectangle"
	o.Mesh.Nx, o.Mesh.Ny = 8, 8
	o.Mesh.Xmax, o.Mesh.Ymax = 1, 1
	o.Space.Family = "CG"
	o.Space.Degree = 1
	o.Space.Ncomp = 1
	o.Problem.Form = "laplace"
	o.Problem.Strategy = "apply"
	o.Problem.Diag = 1
	o.LinSol.Name = "lu"
}

// PostProcess checks data and reads or generates the mesh
//  dir -- directory of .sim file; mesh files are relative to this directory
func (o *Simulation) PostProcess(dir string) (err error) {

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/dirichlet/" + o.Key
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "json"
	}

	// space
	switch o.Space.Family {
	case "CG", "P", "Lagrange":
	default:
		return chk.Err("family of function space %q is not available", o.Space.Family)
	}
	if o.Space.Degree < 1 || o.Space.Degree > 2 {
		return chk.Err("degree of function space must be 1 or 2. degree=%d is invalid", o.Space.Degree)
	}
	if o.Space.Ncomp < 1 {
		o.Space.Ncomp = 1
	}

	// problem
	switch o.Problem.Strategy {
	case "apply", "zerocols":
	default:
		return chk.Err("strategy %q is invalid. options are \"apply\" or \"zerocols\"", o.Problem.Strategy)
	}

	// boundary conditions
	for i, bc := range o.Bcs {
		if bc.Name == "" {
			bc.Name = io.Sf("bc%d", i)
		}
		if bc.Where == "" && bc.Tag == 0 {
			return chk.Err("boundary condition %q needs either \"where\" or \"tag\"", bc.Name)
		}
		if len(bc.Funcs) == 0 {
			bc.Funcs = []string{"zero"}
		}
		if bc.Method == "" {
			bc.Method = "topological"
		}
		if bc.Sub < 0 || bc.Sub > o.Space.Ncomp {
			return chk.Err("boundary condition %q has invalid subspace index %d", bc.Name, bc.Sub)
		}
	}

	// mesh
	if o.Mesh.Mshfile != "" {
		o.Msh, err = ReadMsh(dir, o.Mesh.Mshfile)
		return
	}
	if o.Mesh.Nx < 1 || (o.Mesh.Gen == "rectangle" && o.Mesh.Ny < 1) {
		return chk.Err("number of divisions must be at least 1. nx=%d ny=%d are invalid", o.Mesh.Nx, o.Mesh.Ny)
	}
	switch o.Mesh.Gen {
	case "interval":
		o.Msh = IntervalMesh(o.Mesh.Nx, o.Mesh.Xmin, o.Mesh.Xmax)
	case "rectangle":
		o.Msh = RectangleMesh(o.Mesh.Xmin, o.Mesh.Ymin, o.Mesh.Xmax, o.Mesh.Ymax, o.Mesh.Nx, o.Mesh.Ny)
	default:
		return chk.Err("mesh generator %q is not available", o.Mesh.Gen)
	}
	return
}
