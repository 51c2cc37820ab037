package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/optable/crack/internal/crypto"
	"github.com/optable/crack/internal/util"
	"github.com/optable/crack/pkg/codec"
	"github.com/optable/crack/test/corpus"
)

const (
	usage = `%s number_of_lines passphrase key_size

 writes %s (hex lines, one single-byte XOR), %s (base64 repeating-key XOR)
 and %s (hex lines, one AES-128-ECB under the key derived from passphrase)

example:
 %s 327 "Terminator X: Bring the noise" 29
`
	defaultLines      = 327
	defaultPassphrase = "Terminator X: Bring the noise"
	defaultKeySize    = 29
	singleOutput      = "single.txt"
	repeatingOutput   = "repeating.txt"
	ecbOutput         = "ecb.txt"
	ecbBlocks         = 10
)

type config struct {
	lines      int
	passphrase string
	keySize    int
}

func formatUsage() string {
	name := os.Args[0]
	return fmt.Sprintf(usage, name, singleOutput, repeatingOutput, ecbOutput, name)
}

// global conf
var conf config

func formatArgs() string {
	return fmt.Sprintf("generating %d lines and a %d byte key from %q",
		conf.lines, conf.keySize, conf.passphrase)
}

func init() {
	// we have default values for everything
	conf = config{lines: defaultLines, passphrase: defaultPassphrase, keySize: defaultKeySize}
	if len(os.Args) > 1 {
		if n, err := strconv.Atoi(os.Args[1]); err == nil {
			conf.lines = n
		} else {
			log.Fatal(err)
		}
	}
	if len(os.Args) > 2 {
		conf.passphrase = os.Args[2]
	}
	if len(os.Args) > 3 {
		if n, err := strconv.Atoi(os.Args[3]); err == nil {
			conf.keySize = n
		} else {
			log.Fatal(err)
		}
	}
}

func main() {
	println(formatUsage())
	println(formatArgs())

	key, err := crypto.DeriveKey([]byte(conf.passphrase), conf.keySize)
	if err != nil {
		log.Fatal(err)
	}
	aesKey, err := crypto.DeriveKey([]byte(conf.passphrase), 16)
	if err != nil {
		log.Fatal(err)
	}

	sentences := corpus.Sentences()
	ecbLines, err := corpus.ECB(aesKey, conf.lines, conf.lines/3, ecbBlocks)
	if err != nil {
		log.Fatal(err)
	}

	// write all three in parallel
	var ws sync.WaitGroup
	ws.Add(3)
	go output(singleOutput, corpus.Hex(corpus.SingleByte([]byte(sentences[0]), key[0], conf.lines, conf.lines/2)), &ws)
	go output(repeatingOutput, one([]byte(codec.EncodeBase64(util.XorRepeating([]byte(corpus.English), key))+"\n")), &ws)
	go output(ecbOutput, corpus.Hex(ecbLines), &ws)
	ws.Wait()
}

func one(b []byte) <-chan []byte {
	out := make(chan []byte, 1)
	out <- b
	close(out)
	return out
}

func output(filename string, lines <-chan []byte, ws *sync.WaitGroup) {
	defer ws.Done()
	if f, err := os.Create(filename); err == nil {
		defer f.Close()
		// exhaust out
		for line := range lines {
			// and write it
			if _, err := f.Write(line); err != nil {
				log.Fatal(err)
			}
		}
	} else {
		log.Fatal(err)
	}
}
