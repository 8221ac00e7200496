package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-walker/domain"
	"github.com/beka-birhanu/vinom-walker/service/i"
	"github.com/google/uuid"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) log(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf("[%s] %s", level, msg))
}

func (l *recordingLogger) Info(msg string)    { l.log("INFO", msg) }
func (l *recordingLogger) Warning(msg string) { l.log("WARNING", msg) }
func (l *recordingLogger) Error(msg string)   { l.log("ERROR", msg) }

type memoryLeaderboard struct {
	best map[uuid.UUID]int
	err  error
}

func (b *memoryLeaderboard) Record(_ context.Context, id uuid.UUID, depth int) (int, error) {
	if b.err != nil {
		return 0, b.err
	}
	b.best[id] = max(b.best[id], depth)
	return b.best[id], nil
}

func (b *memoryLeaderboard) Top(context.Context, int64) ([]i.LeaderboardEntry, error) {
	return nil, nil
}

type memoryUserRepo struct {
	users map[uuid.UUID]*dmn.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[uuid.UUID]*dmn.User{}}
}

func (r *memoryUserRepo) Save(u *dmn.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memoryUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	cp := *u
	return &cp, nil
}

func (r *memoryUserRepo) ByUsername(name string) (*dmn.User, error) {
	for _, u := range r.users {
		if u.Username == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errors.New("user not found")
}

type stubTokenizer struct{}

func (stubTokenizer) Generate(claims map[string]interface{}, _ time.Duration) (string, error) {
	return fmt.Sprintf("token-for-%v", claims["username"]), nil
}

func (stubTokenizer) Decode(string) (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
