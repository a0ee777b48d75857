package service

import (
	"regexp"
	"strconv"
	"sync"
	"time"
)

// Fixed cache keys.
const (
	keyAuthUser  = "authUser"
	keyAdminAuth = "adminAuth"
)

const tempIDPrefix = "temp_"

// pendingKeyPattern matches "<collectionPath>_temp_<digits>".
var pendingKeyPattern = regexp.MustCompile(`^(.+)_(` + tempIDPrefix + `[0-9]+)$`)

func documentKey(collectionPath, id string) string {
	return collectionPath + "_" + id
}

func userPath(uid string) string {
	return "users/" + uid
}

func adminPath(uid string) string {
	return "admins/" + uid
}

// parsePendingKey splits a staged-write key into its collection path and
// temporary ID.
func parsePendingKey(key string) (collectionPath, tempID string, ok bool) {
	m := pendingKeyPattern.FindStringSubmatch(key)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// tempIDGenerator issues "temp_<unix millis>" IDs. Two IDs requested within
// the same millisecond get consecutive values so staged writes never share a
// key.
type tempIDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func (g *tempIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms

	return tempIDPrefix + strconv.FormatInt(ms, 10)
}
