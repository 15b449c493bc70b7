package service

import (
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/repository"
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
)

// 内存版仓储，行为对齐 gorm 实现：未命中返回 nil, nil
type fakeUserRepo struct {
	mu    sync.Mutex
	seq   uint64
	users map[uint64]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*model.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	user.ID = f.seq
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAllUsers(_ context.Context) ([]*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.User, 0, len(f.users))
	for _, user := range f.users {
		cp := *user
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) UpdateUserProfile(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[user.ID]
	if !ok {
		return nil
	}
	stored.Name = user.Name
	stored.Email = user.Email
	stored.Password = user.Password
	stored.UpdatedAt = time.Now()
	return nil
}

func (f *fakeUserRepo) UpdateUserAvatar(_ context.Context, id uint64, fileName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Avatar = &fileName
	return nil
}

func (f *fakeUserRepo) UpdateUserPostCount(_ context.Context, id uint64, count int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[id]
	if !ok {
		return nil
	}
	stored.PostCount = count
	return nil
}

type fakePostRepo struct {
	mu    sync.Mutex
	seq   uint64
	clock time.Time
	posts map[uint64]*model.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		clock: time.Now(),
		posts: make(map[uint64]*model.Post),
	}
}

// tick 保证时间戳严格递增，排序断言才有意义
func (f *fakePostRepo) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *model.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !consts.IsValidCategory(post.Category) {
		return repository.ErrInvalidCategory
	}
	f.seq++
	post.ID = f.seq
	post.CreatedAt = f.tick()
	post.UpdatedAt = post.CreatedAt
	cp := *post
	f.posts[post.ID] = &cp
	return nil
}

func (f *fakePostRepo) GetPostById(_ context.Context, id uint64) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *post
	return &cp, nil
}

func (f *fakePostRepo) GetPosts(_ context.Context) ([]*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.snapshot(func(*model.Post) bool { return true })
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (f *fakePostRepo) GetPostsByCategory(_ context.Context, category string) ([]*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.snapshot(func(p *model.Post) bool { return p.Category == category })
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakePostRepo) GetPostsByCreator(_ context.Context, creatorID uint64) ([]*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.snapshot(func(p *model.Post) bool { return p.CreatorID == creatorID })
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakePostRepo) UpdatePost(_ context.Context, post *model.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !consts.IsValidCategory(post.Category) {
		return repository.ErrInvalidCategory
	}
	stored, ok := f.posts[post.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Title = post.Title
	stored.Category = post.Category
	stored.Description = post.Description
	stored.Thumbnail = post.Thumbnail
	stored.UpdatedAt = f.tick()
	return nil
}

func (f *fakePostRepo) DeletePost(_ context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) snapshot(keep func(*model.Post) bool) []*model.Post {
	out := make([]*model.Post, 0, len(f.posts))
	for _, post := range f.posts {
		if keep(post) {
			cp := *post
			out = append(out, &cp)
		}
	}
	return out
}
