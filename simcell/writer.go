// SPDX-License-Identifier: MIT
// Package: lattix/simcell
//
// writer.go - LAMMPS data file output.
//
// Layout (field order and keywords are fixed):
//
//	## <dd/mm/yyyy hh:mm:ss> <header>
//	<N> atoms
//	<T> atom types
//	<xlo> <xhi> xlo xhi
//	<ylo> <yhi> ylo yhi
//	<zlo> <zhi> zlo zhi
//	<xy> <xz> <yz> xy xz yz
//
//	Atoms
//
//	<id> <type> <x> <y> <z>
//
// Numbers use the shortest representation that round-trips.

package simcell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
)

// WriteData writes the cell to w. Unwrapped cells emit every grain point.
func (c *Cell) WriteData(w io.Writer) error {
	bw := bufio.NewWriter(w)
	b := c.bounds
	atoms := c.Atoms()

	fmt.Fprintf(bw, "## %s %s\n", c.cfg.now().Format(TimestampLayout), c.cfg.header)
	fmt.Fprintf(bw, "%d atoms\n", len(atoms))
	fmt.Fprintf(bw, "%d atom types\n", c.AtomTypeCount())
	fmt.Fprintf(bw, "%s %s xlo xhi\n", num(b.Lo.X), num(b.Hi.X))
	fmt.Fprintf(bw, "%s %s ylo yhi\n", num(b.Lo.Y), num(b.Hi.Y))
	fmt.Fprintf(bw, "%s %s zlo zhi\n", num(b.Lo.Z), num(b.Hi.Z))
	fmt.Fprintf(bw, "%s %s %s xy xz yz\n", num(b.XY), num(b.XZ), num(b.YZ))
	bw.WriteString("\nAtoms\n\n")
	for _, a := range atoms {
		fmt.Fprintf(bw, "%d %d %s %s %s\n", a.ID, a.Type,
			num(a.Position.X), num(a.Position.Y), num(a.Position.Z))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWriteData, err)
	}
	return nil
}

// WriteDataFile writes the cell to path, replacing any existing file.
func (c *Cell) WriteDataFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s: %w", methodWriteDataFile, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("%s: close: %w", methodWriteDataFile, cerr))
		}
	}()
	if err := c.WriteData(f); err != nil {
		return fmt.Errorf("%s: %s: %w", methodWriteDataFile, path, err)
	}
	c.cfg.logger.Info("data file written",
		slog.String("path", path),
		slog.Int("atoms", c.AtomCount()),
		slog.Int("atom_types", c.AtomTypeCount()),
		slog.Bool("wrapped", c.wrapped),
	)
	return nil
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
