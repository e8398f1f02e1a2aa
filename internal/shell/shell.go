// Package shell is the interactive console front end: it collects passenger
// details and station names and prints planner results.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mohinik7/Metro-Route-Optimization/internal/model"
	"github.com/mohinik7/Metro-Route-Optimization/internal/planner"
	"github.com/mohinik7/Metro-Route-Optimization/internal/session"
)

type Shell struct {
	p   *planner.Planner
	in  *bufio.Scanner
	out io.Writer
}

func New(p *planner.Planner, in io.Reader, out io.Writer) *Shell {
	return &Shell{p: p, in: bufio.NewScanner(in), out: out}
}

var errEOF = errors.New("input closed")

func (s *Shell) println(a ...any)               { fmt.Fprintln(s.out, a...) }
func (s *Shell) printf(format string, a ...any) { fmt.Fprintf(s.out, format, a...) }

func (s *Shell) prompt(msg string) (string, error) {
	s.println(msg)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errEOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Shell) promptInt(msg string, bits int) (int64, error) {
	for {
		line, err := s.prompt(msg)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseInt(line, 10, bits)
		if err == nil && v >= 0 {
			return v, nil
		}
		s.println("Please enter a valid number.")
	}
}

func (s *Shell) promptStation(msg string) (string, error) {
	name, err := s.prompt(msg)
	return strings.ToUpper(name), err
}

// Run drives one session until the user exits or input ends.
func (s *Shell) Run() error {
	err := s.run()
	if errors.Is(err, errEOF) {
		return nil
	}
	return err
}

func (s *Shell) run() error {
	name, err := s.prompt("Enter name of passenger:")
	if err != nil {
		return err
	}
	age, err := s.promptInt("Enter age:", 32)
	if err != nil {
		return err
	}
	phone, err := s.promptInt("Enter phone number:", 64)
	if err != nil {
		return err
	}
	sess := session.New(model.NewPassenger(name, int(age), phone))

	for _, st := range s.p.Net.Stations() {
		s.printf("%d. %s\n", st.ID+1, st.Name)
	}

	start, err := s.promptStation("Enter start station name:")
	if err != nil {
		return err
	}
	end, err := s.promptStation("Enter end station name:")
	if err != nil {
		return err
	}

	for {
		s.println()
		s.println("Choose an option:")
		s.println("1. Display Route Details")
		s.println("2. Find Alternative Routes")
		s.println("3. Find Minimal Transfer Path")
		s.println("4. Change Route")
		s.println("5. Exit")

		choice, err := s.prompt("")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			s.displayRoute(start, end)
		case "2":
			s.alternatives(start, end)
		case "3":
			s.minimalTransfer(sess, start, end)
		case "4":
			if err := s.changeRoute(sess, start, end); err != nil {
				return err
			}
		case "5":
			s.println("Exiting...")
			return nil
		default:
			s.println("Invalid choice. Please try again.")
		}
	}
}

func (s *Shell) displayRoute(start, end string) {
	r, err := s.p.Route(start, end)
	if err != nil {
		s.println(err)
		return
	}
	if !r.Found {
		s.println(r)
		return
	}
	s.println("Route:", r)
}

func (s *Shell) alternatives(start, end string) {
	alts, err := s.p.Alternatives(start, end)
	if err != nil {
		s.println(err)
		return
	}
	if len(alts) == 0 {
		s.println("No path found.")
		return
	}
	for _, a := range alts {
		s.printf("Alternative Route %d: %s\n", a.Index, planner.Render(a.Stations))
		s.printf("Price: %s\n", money(a.Price))
	}
}

func (s *Shell) minimalTransfer(sess *session.Session, start, end string) {
	t, err := s.p.MinimalTransfer(sess.Passenger, start, end)
	if err != nil {
		s.println(err)
		return
	}
	s.printTransfer(t)
	if t.Found {
		sess.SetBill(t.Bill.Amount)
		s.printBill(sess)
	}
}

func (s *Shell) printTransfer(t planner.Transfer) {
	if !t.Found {
		s.println(t.Route)
		return
	}
	s.println("Minimal Transfer Path:", t.Route)
	s.printf("Price: %s\n", money(t.Quote))
}

func (s *Shell) printBill(sess *session.Session) {
	s.println("Passenger:", sess.Passenger.Name)
	s.println("Phone Number:", sess.Passenger.Phone)
	s.printf("Bill Amount: %s\n", money(sess.Bill()))
}

func (s *Shell) changeRoute(sess *session.Session, start, end string) error {
	mid, err := s.promptStation("Enter station that you want to get off at:")
	if err != nil {
		return err
	}

	ok, err := s.p.OnPath(start, mid, end)
	if err != nil {
		s.println(err)
		return nil
	}
	if !ok {
		s.printf("Station %s does not lie on your path\n", mid)
		return nil
	}

	dest, err := s.promptStation("Enter new destination station:")
	if err != nil {
		return err
	}

	c, err := s.p.ChangeRoute(sess.Passenger, start, mid, dest)
	if err != nil {
		s.println(err)
		return nil
	}
	if !c.OnPath {
		s.println("Midway station is not on the path from start to destination.")
	}
	s.printTransfer(c.Leg)
	if c.Leg.Bill.Found {
		sess.SetBill(c.Leg.Bill.Amount)
	}
	if c.Found {
		sess.SetBill(c.Amount)
	}
	s.printBill(sess)
	return nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
