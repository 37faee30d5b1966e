package util

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
)

// Prompter 带边界校验的数值输入读取器
// 反复提示直到读到范围内的合法值，非法输入所在的整行被丢弃后重试
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Int 读取 [min, max] 范围内的整数，输入源耗尽时返回错误
func (p *Prompter) Int(prompt string, min, max int) (int, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := cast.ToIntE(line)
		if err != nil || value < min || value > max {
			fmt.Fprintln(p.out, "Invalid input. Please try again.")
			continue
		}
		return value, nil
	}
}

// Float64 读取 [min, max] 范围内的实数，输入源耗尽时返回错误
func (p *Prompter) Float64(prompt string, min, max float64) (float64, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := cast.ToFloat64E(line)
		if err != nil || value < min || value > max {
			fmt.Fprintln(p.out, "Invalid input. Please try again.")
			continue
		}
		return value, nil
	}
}

func (p *Prompter) readLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}
