package store

import (
	"bytes"
	"encoding/binary"

	. "github.com/nickdrozd/right-to-leftsp/pkg/store/storedefs"
	bolt "go.etcd.io/bbolt"
)

// NextCmdSeq returns the sequence number the next input will get.
func (s *dbStore) NextCmdSeq() (int, error) {
	var seq uint64
	err := s.view(func(b *bolt.Bucket) error {
		seq = b.Sequence() + 1
		return nil
	})
	return int(seq), err
}

// AddCmd appends an input to the history and returns its sequence number.
func (s *dbStore) AddCmd(text string) (int, error) {
	var seq uint64
	err := s.update(func(b *bolt.Bucket) error {
		var err error
		if seq, err = b.NextSequence(); err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(text))
	})
	return int(seq), err
}

// CmdsWithSeq returns all inputs with sequence numbers in [from, upto).
func (s *dbStore) CmdsWithSeq(from, upto int) ([]Cmd, error) {
	var cmds []Cmd
	err := s.view(func(b *bolt.Bucket) error {
		c := b.Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil; k, v = c.Next() {
			cmd := makeCmd(k, v)
			if cmd.Seq >= upto {
				break
			}
			cmds = append(cmds, cmd)
		}
		return nil
	})
	return cmds, err
}

// PrevCmd finds the last input before upto starting with prefix.
func (s *dbStore) PrevCmd(upto int, prefix string) (Cmd, error) {
	var cmd Cmd
	err := s.view(func(b *bolt.Bucket) error {
		c := b.Cursor()
		k, v := c.Seek(marshalSeq(uint64(upto)))
		if k == nil {
			// Every input is before upto.
			k, v = c.Last()
		} else {
			k, v = c.Prev()
		}
		for ; k != nil; k, v = c.Prev() {
			if bytes.HasPrefix(v, []byte(prefix)) {
				cmd = makeCmd(k, v)
				return nil
			}
		}
		return ErrNoMatchingCmd
	})
	return cmd, err
}

func makeCmd(k, v []byte) Cmd {
	return Cmd{Text: string(v), Seq: int(unmarshalSeq(k))}
}

// Keys are big-endian so that the byte order of keys agrees with the numeric
// order of sequence numbers.
func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
