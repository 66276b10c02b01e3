package diskmap_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hupe1980/diskmap"
	"github.com/hupe1980/diskmap/codec"
	"github.com/hupe1980/diskmap/compress"
)

type Person struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       uint8  `json:"age"`
}

func Example() {
	dir, err := os.MkdirTemp("", "diskmap")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "people.ogma")

	store := diskmap.New[uint64, Person](path)
	store.Set(5, Person{FirstName: "John", LastName: "Smith", Age: 35})
	if err := store.Save(); err != nil {
		log.Fatal(err)
	}

	reopened, err := diskmap.Open[uint64, Person](path)
	if err != nil {
		log.Fatal(err)
	}
	person, ok := reopened.Get(5)
	fmt.Println(ok, person.FirstName, person.LastName)
	// Output: true John Smith
}

// Example_configured shows swapping the codec and compression collaborators.
func Example_configured() {
	dir, err := os.MkdirTemp("", "diskmap")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "counts.ogma")

	opts := []diskmap.Option{
		diskmap.WithCodec(codec.Msgpack{}),
		diskmap.WithCompressor(compress.Zstd{}),
		diskmap.WithCompressionLevel(compress.Smallest(compress.Zstd{})),
	}

	store := diskmap.New[string, int](path, opts...)
	store.Set("visits", 42)
	if err := store.Save(); err != nil {
		log.Fatal(err)
	}

	// The same codec and compressor must be configured to open the file.
	reopened, err := diskmap.Open[string, int](path, opts...)
	if err != nil {
		log.Fatal(err)
	}
	visits, _ := reopened.Get("visits")
	fmt.Println(visits)
	// Output: 42
}
