package corpus

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"strings"
	"sync"

	"github.com/optable/crack/internal/util"
	"github.com/optable/crack/pkg/ecb"
)

// English is public domain prose used as known plaintext.
const English = `Four score and seven years ago our fathers brought forth on this continent, a new nation, conceived in Liberty, and dedicated to the proposition that all men are created equal.
Now we are engaged in a great civil war, testing whether that nation, or any nation so conceived and so dedicated, can long endure. We are met on a great battle-field of that war. We have come to dedicate a portion of that field, as a final resting place for those who here gave their lives that that nation might live. It is altogether fitting and proper that we should do this.
But, in a larger sense, we can not dedicate, we can not consecrate, we can not hallow this ground. The brave men, living and dead, who struggled here, have consecrated it, far above our poor power to add or detract. The world will little note, nor long remember what we say here, but it can never forget what they did here. It is for us the living, rather, to be dedicated here to the unfinished work which they who fought here have thus far so nobly advanced. It is rather for us to be here dedicated to the great task remaining before us, that from these honored dead we take increased devotion to that cause for which they gave the last full measure of devotion, that we here highly resolve that these dead shall not have died in vain, that this nation, under God, shall have a new birth of freedom, and that government of the people, by the people, for the people, shall not perish from the earth.
It was the best of times, it was the worst of times, it was the age of wisdom, it was the age of foolishness, it was the epoch of belief, it was the epoch of incredulity, it was the season of Light, it was the season of Darkness, it was the spring of hope, it was the winter of despair, we had everything before us, we had nothing before us, we were all going direct to Heaven, we were all going direct the other way.
Call me Ishmael. Some years ago, never mind how long precisely, having little or no money in my purse, and nothing particular to interest me on shore, I thought I would sail about a little and see the watery part of the world. It is a way I have of driving off the spleen and regulating the circulation. Whenever I find myself growing grim about the mouth; whenever it is a damp, drizzly November in my soul; whenever I find myself involuntarily pausing before coffin warehouses, and bringing up the rear of every funeral I meet; then, I account it high time to get to sea as soon as I can.
It is a truth universally acknowledged, that a single man in possession of a good fortune, must be in want of a wife. However little known the feelings or views of such a man may be on his first entering a neighbourhood, this truth is so well fixed in the minds of the surrounding families, that he is considered the rightful property of some one or other of their daughters.
`

// Sentences returns the non empty lines of English.
func Sentences() []string {
	var s []string
	for _, l := range strings.Split(English, "\n") {
		if l != "" {
			s = append(s, l)
		}
	}
	return s
}

// Fresh writes n random blobs of size bytes to a channel and then closes it
func Fresh(n, size int) <-chan []byte {
	out := make(chan []byte)
	go func() {
		defer close(out)
		for i := 0; i < n; i++ {
			b := make([]byte, size)
			if _, err := rand.Read(b); err != nil {
				log.Fatalf("could not generate %d random bytes", size)
			}
			out <- b
		}
	}()
	return out
}

// SingleByte writes n ciphertexts to a channel: the one at position at
// is plaintext XORed with key, the others random blobs of the same size.
func SingleByte(plaintext []byte, key byte, n, at int) <-chan []byte {
	return plant(Fresh(n, len(plaintext)), at, util.XorRepeating(plaintext, []byte{key}))
}

// ECB writes n ciphertexts of blocks AES blocks to a channel: the one at
// position at is the ECB encryption under key of a plaintext repeating
// its first block, the others random blobs.
func ECB(key []byte, n, at, blocks int) (<-chan []byte, error) {
	plaintext := make([]byte, blocks*ecb.BlockSize)
	copy(plaintext, English)
	// ECB leaks the repetition of the first block
	copy(plaintext[(blocks-1)*ecb.BlockSize:], plaintext[:ecb.BlockSize])

	c, err := ecb.Encrypt(plaintext, key)
	if err != nil {
		return nil, err
	}
	return plant(Fresh(n, len(plaintext)), at, c), nil
}

// plant replaces the element at position at of in with b
func plant(in <-chan []byte, at int, b []byte) <-chan []byte {
	out := make(chan []byte)
	go func() {
		defer close(out)
		var i int
		for r := range in {
			if i == at {
				r = b
			}
			out <- r
			i++
		}
	}()
	return out
}

// encode returns value in hex with \n at the end
func encode(value []byte) []byte {
	out := make([]byte, hex.EncodedLen(len(value)), hex.EncodedLen(len(value))+1)
	hex.Encode(out, value)
	return append(out, '\n')
}

// Hex reads every channel to exhaustion, encodes each value as a hex
// line and fans them in on the returned channel, then closes it.
// Order is kept within a channel, not across channels.
func Hex(cs ...<-chan []byte) <-chan []byte {
	var ws sync.WaitGroup
	out := make(chan []byte)
	ws.Add(len(cs))
	// exhaust a channel
	f := func(c <-chan []byte) {
		defer ws.Done()
		for b := range c {
			out <- encode(b)
		}
	}
	for _, c := range cs {
		go f(c)
	}
	// and wait so we can close the out channel
	go func() {
		ws.Wait()
		close(out)
	}()

	return out
}
