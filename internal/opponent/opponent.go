/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package opponent owns the external engine subprocess that plays the
// opponent's side: spawning it, forwarding its two-line boot handshake to
// the user, and afterwards exchanging SAN lines with it.
package opponent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/frankkopp/boardctl/internal/blogging"
)

var log = blogging.Get("opponent")

// Driver spawns and owns the opponent process's stdin/stdout as a
// bidirectional SAN line stream.
type Driver struct {
	cmd  *exec.Cmd
	in   *bufio.Writer
	out  *bufio.Scanner
	user io.Writer
}

// Start launches path with args, piping its stdin/stdout. userOut and
// userIn carry the boot handshake prompts and replies (typically stdout
// and stdin of cmd/boardctl itself).
func Start(ctx context.Context, path string, args []string, userOut io.Writer, userIn io.Reader) (*Driver, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("opponent: stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("opponent: stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("opponent: spawn %s: %w", path, err)
	}

	d := &Driver{
		cmd:  cmd,
		in:   bufio.NewWriter(stdin),
		out:  bufio.NewScanner(stdout),
		user: userOut,
	}

	if err := d.handshake(userOut, userIn); err != nil {
		return nil, err
	}
	return d, nil
}

// handshake forwards the opponent's two boot prompts to userOut and the
// user's two replies straight through to the opponent's stdin, unparsed.
func (d *Driver) handshake(userOut io.Writer, userIn io.Reader) error {
	userScanner := bufio.NewScanner(userIn)
	for i := 0; i < 2; i++ {
		if !d.out.Scan() {
			return fmt.Errorf("opponent: boot handshake: %w", d.out.Err())
		}
		fmt.Fprintln(userOut, d.out.Text())
		if !userScanner.Scan() {
			return fmt.Errorf("opponent: boot handshake: no user reply")
		}
		if _, err := fmt.Fprintln(d.in, userScanner.Text()); err != nil {
			return fmt.Errorf("opponent: boot handshake: %w", err)
		}
		if err := d.in.Flush(); err != nil {
			return fmt.Errorf("opponent: boot handshake: %w", err)
		}
	}
	log.Info("opponent boot handshake complete")
	return nil
}

// SendMove writes san as the human's move, one line.
func (d *Driver) SendMove(san string) error {
	log.Debugf("-> %s", san)
	if _, err := fmt.Fprintln(d.in, san); err != nil {
		return err
	}
	return d.in.Flush()
}

// ReadMove blocks for the opponent's reply SAN line. ctx cancellation does
// not interrupt an in-flight Scan - the underlying process must exit for
// that - but is accepted for interface symmetry with future callers.
func (d *Driver) ReadMove(ctx context.Context) (string, error) {
	if !d.out.Scan() {
		if err := d.out.Err(); err != nil {
			return "", fmt.Errorf("opponent: read move: %w", err)
		}
		return "", io.EOF
	}
	san := d.out.Text()
	log.Debugf("<- %s", san)
	return san, nil
}

// Close terminates the opponent process and releases its pipes.
func (d *Driver) Close() error {
	_ = d.in.Flush()
	if d.cmd.Process != nil {
		_ = d.cmd.Process.Kill()
	}
	return d.cmd.Wait()
}
