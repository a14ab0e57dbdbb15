package soll

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Print writes the values in sequence order to w, separated by
// spaces and followed by a newline.
func (l *List[T]) Print(w io.Writer) error { return printSeq(w, l.All()) }

// PrintReverse writes the values from the back of the list to the front.
func (l *List[T]) PrintReverse(w io.Writer) error { return printSeq(w, l.Backward()) }

// PrintAscending writes the values from smallest to largest.
func (l *List[T]) PrintAscending(w io.Writer) error { return printSeq(w, l.Ascending()) }

// PrintDescending writes the values from largest to smallest.
func (l *List[T]) PrintDescending(w io.Writer) error { return printSeq(w, l.Descending()) }

// String renders the values in sequence order, in the same form fmt
// uses for slices.
func (l *List[T]) String() string {
	var buf strings.Builder
	buf.WriteByte('[')
	_ = writeSeq(&buf, l.All())
	buf.WriteByte(']')
	return buf.String()
}

// MarshalLogObject implements zapcore.ObjectMarshaler, so that lists
// can be logged with zap.Object. The object has the size of the list
// and its values in sequence and ascending order.
func (l *List[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("size", l.Len())
	if err := enc.AddArray("sequence", l.SequenceLog()); err != nil {
		return err
	}
	return enc.AddArray("ascending", l.SortedLog())
}

// SequenceLog returns a zapcore.ArrayMarshaler for the values in
// sequence order, for use with zap.Array.
func (l *List[T]) SequenceLog() zapcore.ArrayMarshaler { return logArray[T](l.All()) }

// SortedLog returns a zapcore.ArrayMarshaler for the values in
// ascending order, for use with zap.Array.
func (l *List[T]) SortedLog() zapcore.ArrayMarshaler { return logArray[T](l.Ascending()) }

type logArray[T any] iter.Seq[T]

func (a logArray[T]) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for v := range iter.Seq[T](a) {
		if err := enc.AppendReflected(v); err != nil {
			return err
		}
	}
	return nil
}

func printSeq[T any](w io.Writer, seq iter.Seq[T]) error {
	bw := bufio.NewWriter(w)
	if err := writeSeq(bw, seq); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}

func writeSeq[T any](w io.Writer, seq iter.Seq[T]) error {
	first := true
	for v := range seq {
		sep := " "
		if first {
			sep, first = "", false
		}
		if _, err := fmt.Fprint(w, sep, v); err != nil {
			return err
		}
	}
	return nil
}
