package util

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func Abs[A constraints.Signed](num A) A {
	if num < 0 {
		return -num
	}
	return num
}

func CreateBinary(filename string, data any) {
	fmt.Printf("Creating binary for filename: %v\n", filename)
	buf := new(bytes.Buffer)
	encoder := gob.NewEncoder(buf)

	err := encoder.Encode(data)
	if err != nil {
		panic(err)
	}
	f, err := os.Create(filename)
	if err != nil {
		fmt.Println("Couldn't open file: "+filename, err)
	}
	defer f.Close()

	_, err = f.Write(buf.Bytes())
	if err != nil {
		fmt.Println("Write failed for file: "+filename, err)
	}
}

func ReadBinaryOrPanic[A any](path string) A {
	f, err := os.Open(path)
	if err != nil {
		panic("Could not load binary file: " + err.Error())
	}
	defer f.Close()

	var data A
	decoder := gob.NewDecoder(f)
	err = decoder.Decode(&data)
	if err != nil {
		panic("Could not decode binary file: " + err.Error())
	}

	return data
}