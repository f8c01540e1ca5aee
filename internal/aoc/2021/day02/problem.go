package aoc2021day02

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/advent-of-code-2021/internal/utils"
)

var ErrMalformedCommand = errors.New("malformed command")

type Verb string

const (
	Forward Verb = "forward"
	Down    Verb = "down"
	Up      Verb = "up"
)

type Command struct {
	Verb      Verb
	Magnitude int
}

// Position is the submarine state. Methods never mutate the receiver, so a
// course is a plain left fold over the commands.
type Position struct {
	Horizontal int
	Depth      int
	Aim        int
}

func (p Position) Forward(x int) Position {
	p.Horizontal += x
	p.Depth += p.Aim * x
	return p
}

func (p Position) Down(x int) Position {
	p.Aim += x
	return p
}

func (p Position) Up(x int) Position {
	p.Aim -= x
	return p
}

// Move applies c with the first reading of the manual, where down and up
// change the depth directly.
func (p Position) Move(c Command) Position {
	switch c.Verb {
	case Forward:
		p.Horizontal += c.Magnitude
	case Down:
		p.Depth += c.Magnitude
	case Up:
		p.Depth -= c.Magnitude
	}
	return p
}

// Steer applies c using the aim model.
func (p Position) Steer(c Command) Position {
	switch c.Verb {
	case Forward:
		return p.Forward(c.Magnitude)
	case Down:
		return p.Down(c.Magnitude)
	case Up:
		return p.Up(c.Magnitude)
	default:
		// Unknown verbs are not an error, the submarine just ignores them.
		return p
	}
}

func (p Position) Value() int {
	return p.Horizontal * p.Depth
}

func Plot(commands []Command, step func(Position, Command) Position) Position {
	var position Position
	for _, c := range commands {
		position = step(position, c)
	}
	return position
}

func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Command{}, fmt.Errorf("%w: %q", ErrMalformedCommand, line)
	}

	magnitude, err := utils.ToInt(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("%w: %w", ErrMalformedCommand, err)
	}
	if magnitude < 0 {
		return Command{}, fmt.Errorf("%w: negative magnitude in %q", ErrMalformedCommand, line)
	}

	return Command{Verb: Verb(fields[0]), Magnitude: magnitude}, nil
}

func ParseCommands(lines []string) ([]Command, error) {
	commands := make([]Command, 0, len(lines))
	for i, line := range lines {
		c, err := ParseCommand(line)
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i+1, err)
		}
		commands = append(commands, c)
	}
	return commands, nil
}

type Solver struct{}

func (Solver) Day() int { return 2 }

func (Solver) Title() string { return "Dive!" }

func (Solver) Part1(lines []string) (int, error) {
	commands, err := ParseCommands(lines)
	if err != nil {
		return 0, err
	}
	return Plot(commands, Position.Move).Value(), nil
}

func (Solver) Part2(lines []string) (int, error) {
	commands, err := ParseCommands(lines)
	if err != nil {
		return 0, err
	}
	return Plot(commands, Position.Steer).Value(), nil
}
