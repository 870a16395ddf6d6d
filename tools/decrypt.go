package main

import (
	"bufio"
	"io"
	"io/ioutil"
	"os"

	"moul.io/ksc2jpeg/pkg/kscdec"
)

func usage(cmd string) {
	os.Stderr.WriteString("Usage: " + cmd + " [-e] < input > output\n")
	os.Stderr.WriteString("  decrypts a KSC stream from stdin, -e builds one from a JPEG instead\n")
}

func decrypt(w io.Writer, r io.Reader) error {
	_, err := io.Copy(w, kscdec.NewReader(bufio.NewReader(r)))
	return err
}

func encrypt(w io.Writer, r io.Reader) error {
	plain, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}
	_, err = w.Write(kscdec.Encode(nil, plain))
	return err
}

func main() {
	var err error
	out := bufio.NewWriter(os.Stdout)
	switch {
	case len(os.Args) == 1:
		err = decrypt(out, os.Stdin)
	case len(os.Args) == 2 && os.Args[1] == "-e":
		err = encrypt(out, os.Stdin)
	default:
		usage(os.Args[0])
		os.Exit(2)
	}
	if err == nil {
		err = out.Flush()
	}
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
