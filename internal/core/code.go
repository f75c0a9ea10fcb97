package core

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"strings"
	"time"
)

const (
	codeLength = 6
	codeSpace  = 36 * 36 * 36 * 36 * 36 * 36
)

// newRoomCode returns a 6-character upper-case base-36 room code. Codes are
// meaningless across restarts; uniqueness among live rooms is enforced by the
// hub, not here.
func newRoomCode() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to the clock if crypto/rand is unavailable.
		binary.BigEndian.PutUint64(buf[:], uint64(time.Now().UnixNano()))
	}
	n := binary.BigEndian.Uint64(buf[:]) % codeSpace
	code := strings.ToUpper(strconv.FormatUint(n, 36))
	for len(code) < codeLength {
		code = "0" + code
	}
	return code
}
