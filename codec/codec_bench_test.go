package codec

import (
	"math/rand"
	"testing"
)

func benchData(n int) []byte {
	rng := rand.New(rand.NewSource(1))
	data := make([]byte, n)
	rng.Read(data)

	return data
}

func BenchmarkEncode(b *testing.B) {
	enc, _ := NewEncoder()
	data := benchData(64 * 1024)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := enc.Encode(data)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	enc, _ := NewEncoder()
	data := benchData(64 * 1024)
	sequences, state, err := enc.Encode(data)
	if err != nil {
		b.Fatal(err)
	}

	dec, _ := NewDecoder()

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dec.Decode(sequences, state); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeParallel(b *testing.B) {
	enc, _ := NewEncoder()
	data := benchData(64 * 1024)
	sequences, state, err := enc.Encode(data)
	if err != nil {
		b.Fatal(err)
	}

	dec, _ := NewDecoder(WithParallelism(0))

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dec.Decode(sequences, state); err != nil {
			b.Fatal(err)
		}
	}
}
