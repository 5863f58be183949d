package ClassiCrypt

import (
	"fmt"
	"io"
	"math"
	"runtime"
	"strings"
)

// DEBUG for turning debug logs on/off
const DEBUG = false
const MeMStat = false
const PREFIX = "->> "

type logger struct {
	debug bool
}

func NewLogger(debug bool) Logger {
	return &logger{
		debug: debug,
	}
}

type Logger interface {
	PrintMessage(message string)
	PrintMessages(messages ...interface{})
	PrintFormatted(format string, args ...interface{})
	PrintDataLen(data []byte)
	PrintHeader(header string)
	PrintHex(name string, data []byte)
	PrintMemUsage(name string)
	PrintSummarizedBytes(name string, data []byte, numElements int)
}

func (l logger) PrintMessage(message string) {
	if l.debug {
		fmt.Print(PREFIX)
		fmt.Printf("%s", message)
		fmt.Println()
	}
}

func (l logger) PrintMessages(messages ...interface{}) {
	if l.debug {
		fmt.Print(PREFIX)
		for _, message := range messages {
			fmt.Print(message)
		}
		fmt.Println()
	}
}

func (l logger) PrintFormatted(format string, args ...interface{}) {
	if l.debug {
		fmt.Print(PREFIX)
		fmt.Printf(format, args...)
		fmt.Println()
	}
}

func (l logger) PrintDataLen(data []byte) {
	if l.debug {
		fmt.Print(PREFIX)
		fmt.Printf("Len: %d, Data: %x", len(data), data)
		fmt.Println()
	}
}

func (l logger) PrintHeader(header string) {
	if l.debug {
		fmt.Printf("=== ----\t\t\t %s \t\t\t---- ===\n", header)
	}
}

// PrintHex prints data as a single lowercase hex string
func (l logger) PrintHex(name string, data []byte) {
	if l.debug {
		fmt.Printf("%s%s: %s\n", PREFIX, name, BytesToHex(data))
	}
}

// PrintMemUsage outputs the current, total and OS memory being used.
// For info on each, see: https://golang.org/pkg/runtime/#MemStats
func (l logger) PrintMemUsage(name string) {
	if !MeMStat {
		return
	}
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	mb := 1e6
	alloc := float64(m.Alloc) / mb
	tAlloc := float64(m.TotalAlloc) / mb
	mSys := float64(m.Sys) / mb
	buf := new(strings.Builder)
	width := 15 + 7
	_, err := fmt.Fprintf(buf, "|-> %-*s", width, name)
	HandleError(err)
	buf.WriteByte('\t')
	prettyPrint(buf, alloc, "MB")
	buf.WriteByte('\t')
	prettyPrint(buf, tAlloc, "MB")
	buf.WriteByte('\t')
	prettyPrint(buf, mSys, "MB")
	fmt.Println(buf)
}

// Helps to print the MemStats
func prettyPrint(w io.Writer, x float64, unit string) {
	var format string
	switch y := math.Abs(x); {
	case y == 0 || y >= 0.99995:
		format = "%10.3f %s"
	case y >= 0.099995:
		format = "%15.4f %s"
	case y >= 0.0099995:
		format = "%16.5f %s"
	default:
		format = "%18.7f %s"
	}
	_, err := fmt.Fprintf(w, format, x, unit)
	HandleError(err)
}

// PrintSummarizedBytes prints the first and last few bytes of data
func (l logger) PrintSummarizedBytes(name string, data []byte, numElements int) {
	const summaryLength = 4
	if !l.debug {
		return
	}
	if len(data) == 0 {
		fmt.Print(PREFIX)
		fmt.Println("Vector is empty!")
		return
	}
	if numElements > len(data) {
		numElements = len(data)
	}
	fmt.Printf("[%s]: {", name)
	if numElements > 2*summaryLength {
		for i := 0; i < summaryLength; i++ {
			fmt.Printf("%02x ", data[i])
		}
		fmt.Printf("... ")
		for i := numElements - summaryLength; i < numElements; i++ {
			fmt.Printf("%02x ", data[i])
		}
	} else {
		for i := 0; i < numElements; i++ {
			fmt.Printf("%02x ", data[i])
		}
	}
	fmt.Printf("}\n")
}
