package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	logging "github.com/op/go-logging"

	"github.com/theflywheel/chash"
)

var log = logging.MustGetLogger("main")

var stdoutLogFormat = logging.MustStringFormatter(
	`%{color:reset}%{color}%{time:15:04:05.000} [%{shortfunc}] [%{level}] %{message}`,
)

type options struct {
	Buckets  int    `short:"b" long:"buckets" default:"8" description:"number of hash buckets"`
	Keys     int    `short:"n" long:"keys" default:"10" description:"number of keys to insert"`
	Hash     string `long:"hash" default:"xxhash" choice:"xxhash" choice:"fnv1a" choice:"constant" description:"hash function"`
	Limit    uint32 `long:"max-entries" description:"cap on live entries (0 for no cap)"`
	LogLevel string `short:"l" long:"loglevel" default:"info" description:"set the logging level [debug, info, notice, warning, error, critical]"`
}

func hashFunc(name string) chash.HashFunc {
	switch name {
	case "fnv1a":
		return chash.FNV1a
	case "constant":
		return func(chash.View) uint64 { return 0 }
	default:
		return chash.XXHash
	}
}

func setupLogging(level string) error {
	lvl, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		return err
	}
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", 0), stdoutLogFormat)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return nil
}

func run(opts options) error {
	tbl, err := chash.NewFromConfig(chash.Config{
		Hash:       hashFunc(opts.Hash),
		Buckets:    opts.Buckets,
		MaxEntries: opts.Limit,
	})
	if err != nil {
		return err
	}

	// The table only stores views, so the backing buffers live here.
	keys := make([][]byte, opts.Keys)
	values := make([][]byte, opts.Keys)
	for i := range keys {
		keys[i] = make([]byte, 8)
		values[i] = make([]byte, 8)
		binary.BigEndian.PutUint64(keys[i], uint64(i))
		binary.BigEndian.PutUint64(values[i], uint64(i*100))
		tbl.Put(chash.MutViewOf(keys[i]), chash.MutViewOf(values[i]))
	}
	log.Infof("Inserted %d key-value pairs", tbl.Len())

	lookup := make([]byte, 8)
	for i := 0; i < opts.Keys+5; i += 2 {
		binary.BigEndian.PutUint64(lookup, uint64(i))
		if v, ok := tbl.Get(chash.ViewOf(lookup)); ok {
			fmt.Printf("Key %d => Value %d\n", i, binary.BigEndian.Uint64(v.Bytes()))
		} else {
			fmt.Printf("Key %d not found\n", i)
		}
	}

	if opts.Keys > 2 {
		// Update key 2 in place; the previous value view is handed back.
		newValue := make([]byte, 8)
		binary.BigEndian.PutUint64(newValue, 999)
		old, replaced := tbl.Put(chash.MutViewOf(keys[2]), chash.MutViewOf(newValue))
		if replaced {
			fmt.Printf("Updated key 2: %d => %d\n",
				binary.BigEndian.Uint64(old.Value.Bytes()), binary.BigEndian.Uint64(newValue))
		}

		if old, found := tbl.Pop(chash.ViewOf(keys[0])); found {
			fmt.Printf("Popped key 0 (value %d)\n", binary.BigEndian.Uint64(old.Value.Bytes()))
		}
	}

	st := tbl.Stats()
	log.Infof("Buckets=%d entries=%d used=%d longest_chain=%d load=%.2f",
		st.Buckets, st.Entries, st.UsedBuckets, st.LongestChain, st.LoadFactor())
	return nil
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}
	if err := setupLogging(opts.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := run(opts); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
