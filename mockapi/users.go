// Package mockapi provides a simulated asynchronous user API for examples and demos.
// Every call returns a [trickle.Future] that completes after a random delay.
// The implementation is naive and uses full scan for all operations.
package mockapi

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/destel/trickle"
)

// ErrNotFound is returned for IDs that do not belong to any user.
var ErrNotFound = errors.New("user not found")

type User struct {
	ID         int
	Name       string
	Age        int
	Department string
	IsActive   bool
}

// Users are stored by value and every call returns copies, so callers can't mutate the stored data.
var departments []string
var users []User

var mu sync.RWMutex

// MaxLatency is the upper bound of the simulated latency of every call.
var MaxLatency = 100 * time.Millisecond

func init() {
	const usersCount = 100

	var adjs = []string{"Big", "Small", "Fast", "Slow", "Smart", "Happy", "Sad", "Funny", "Serious", "Angry"}
	var nouns = []string{"Dog", "Cat", "Bird", "Fish", "Mouse", "Elephant", "Lion", "Tiger", "Bear", "Wolf"}

	mu.Lock()
	defer mu.Unlock()

	departments = []string{"HR", "IT", "Finance", "Marketing", "Sales", "Support", "Engineering", "Management"}

	// Use deterministic values for all fields to make examples reproducible
	users = make([]User, 0, usersCount)

	for i := 1; i <= usersCount; i++ {
		user := User{
			ID:         i,
			Name:       adjs[hash(i, "name1")%len(adjs)] + " " + nouns[hash(i, "name2")%len(nouns)], // adj + noun
			Age:        hash(i, "age")%20 + 30,                                                      // 30-50
			Department: departments[hash(i, "dep")%len(departments)],                                // one of
			IsActive:   hash(i, "active")%100 < 60,                                                  // 60%
		}

		users = append(users, user)
	}
}

func GetDepartments() []string {
	res := make([]string, len(departments))
	copy(res, departments)
	return res
}

// GetUser fetches a user by ID.
func GetUser(ctx context.Context, id int) trickle.Future[*User] {
	return trickle.Async(func() (*User, error) {
		if err := randomSleep(ctx); err != nil {
			return nil, err
		}

		mu.RLock()
		defer mu.RUnlock()

		idx, err := getUserIndex(id)
		if err != nil {
			return nil, errors.Wrapf(err, "get user %d", id)
		}

		user := users[idx]
		return &user, nil
	})
}

type UserQuery struct {
	Department string
	Page       int
}

const pageSize = 10

// ListUsers fetches a page of users optionally filtered by department.
func ListUsers(ctx context.Context, query UserQuery) trickle.Future[[]*User] {
	return trickle.Async(func() ([]*User, error) {
		if err := randomSleep(ctx); err != nil {
			return nil, err
		}

		offset := query.Page * pageSize

		mu.RLock()
		defer mu.RUnlock()

		res := make([]*User, 0, pageSize)
		for _, user := range users {
			if query.Department != "" && user.Department != query.Department {
				continue
			}

			if offset > 0 {
				offset--
				continue
			}

			if len(res) >= pageSize {
				break
			}

			userCopy := user
			res = append(res, &userCopy)
		}

		return res, nil
	})
}

// StreamUsers returns a stream of all users of a department, fetching them page by page.
// The next page is requested only after the consumer has pulled all users of the previous one.
func StreamUsers(ctx context.Context, department string) trickle.Stream[*User] {
	page := 0
	exhausted := false

	var current trickle.Future[[]*User]
	pages := trickle.StreamFunc[[]*User](func(t *trickle.Task) trickle.Poll[[]*User] {
		if exhausted {
			return trickle.Done[[]*User]()
		}

		if current == nil {
			current = ListUsers(ctx, UserQuery{Department: department, Page: page})
		}

		res := current.Poll(t)
		if res.IsPending() {
			return res
		}

		current = nil
		page++
		if res.IsReady() && len(res.Value) < pageSize {
			exhausted = true
		}
		if res.IsReady() && len(res.Value) == 0 {
			return trickle.Done[[]*User]()
		}
		return res
	})

	return trickle.Unchunk[*User](pages)
}

// SaveUser saves a user.
func SaveUser(ctx context.Context, user *User) trickle.Future[struct{}] {
	return trickle.Async(func() (struct{}, error) {
		if err := randomSleep(ctx); err != nil {
			return struct{}{}, err
		}

		if user == nil {
			return struct{}{}, errors.New("user is nil")
		}
		if user.Name == "" {
			return struct{}{}, errors.New("username is empty")
		}
		if user.Age <= 0 {
			return struct{}{}, errors.New("age is invalid")
		}

		mu.Lock()
		defer mu.Unlock()

		idx, err := getUserIndex(user.ID)
		if err != nil {
			users = append(users, *user)
		} else {
			users[idx] = *user
		}

		return struct{}{}, nil
	})
}

func getUserIndex(id int) (int, error) {
	for i, u := range users {
		if u.ID == id {
			return i, nil
		}
	}

	return -1, ErrNotFound
}

func hash(input ...any) int {
	hasher := fnv.New32()
	fmt.Fprintln(hasher, input...)
	return int(hasher.Sum32())
}

func randomSleep(ctx context.Context) error {
	if err := ctx.Err(); err != nil || MaxLatency <= 0 {
		return err
	}

	dur := time.Duration(rand.Int63n(int64(MaxLatency)))
	t := time.NewTimer(dur)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
