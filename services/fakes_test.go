package services

import (
	"github.com/plumehq/plume/db"
	"github.com/plumehq/plume/models"
	"gorm.io/gorm"
)

// In-memory repositories for exercising the service layer without a
// database.

type fakeAuthRepo struct {
	users  []*models.User
	nextID uint
}

func newFakeAuthRepo(users ...*models.User) *fakeAuthRepo {
	repo := &fakeAuthRepo{nextID: 1}
	for _, user := range users {
		_, _ = repo.CreateUser(user)
	}
	return repo
}

func (f *fakeAuthRepo) CreateUser(user *models.User) (*models.User, error) {
	if user.ID == 0 {
		user.ID = f.nextID
		f.nextID++
	} else if user.ID >= f.nextID {
		f.nextID = user.ID + 1
	}
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeAuthRepo) IsEmailExist(email string) error {
	for _, user := range f.users {
		if user.Email == email {
			return gorm.ErrDuplicatedKey
		}
	}
	return nil
}

func (f *fakeAuthRepo) IsUsernameExist(username string) error {
	for _, user := range f.users {
		if user.Username == username {
			return gorm.ErrDuplicatedKey
		}
	}
	return nil
}

func (f *fakeAuthRepo) FindUserByEmail(email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepo) FindUserByUsername(username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepo) FindUserByID(id uint) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepo) ResetPassword(userID uint, hashedPassword string) error {
	for _, user := range f.users {
		if user.ID == userID {
			user.HashedPassword = hashedPassword
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeAuthRepo) AddToBlackList(blacklist *models.Blacklist) error { return nil }

func (f *fakeAuthRepo) IsTokenInBlacklist(token string) bool { return false }

type followPair struct {
	userID   uint
	authorID uint
}

type fakeFollowRepo struct {
	pairs map[followPair]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{pairs: make(map[followPair]bool)}
}

func (f *fakeFollowRepo) IsFollowing(userID, authorID uint) (bool, error) {
	return f.pairs[followPair{userID, authorID}], nil
}

func (f *fakeFollowRepo) CreateFollow(follow *models.Follow) error {
	pair := followPair{follow.UserID, follow.AuthorID}
	if f.pairs[pair] {
		return db.ErrAlreadyFollowing
	}
	f.pairs[pair] = true
	return nil
}

func (f *fakeFollowRepo) DeleteFollow(userID, authorID uint) error {
	delete(f.pairs, followPair{userID, authorID})
	return nil
}

func (f *fakeFollowRepo) CountFollowers(authorID uint) (int64, error) {
	var count int64
	for pair := range f.pairs {
		if pair.authorID == authorID {
			count++
		}
	}
	return count, nil
}

type fakePostRepo struct {
	posts  []*models.Post
	nextID uint
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{nextID: 1}
}

func (f *fakePostRepo) CreatePost(post *models.Post) error {
	post.ID = f.nextID
	f.nextID++
	f.posts = append(f.posts, post)
	return nil
}

func (f *fakePostRepo) UpdatePost(post *models.Post) error {
	for i, existing := range f.posts {
		if existing.ID == post.ID {
			f.posts[i] = post
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakePostRepo) GetPostByID(id uint) (*models.Post, error) {
	for _, post := range f.posts {
		if post.ID == id {
			return post, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// page slices matching posts newest first, the way the real queries order
func (f *fakePostRepo) page(match func(*models.Post) bool, page int) (*models.FeedPage, error) {
	var matched []models.Post
	for i := len(f.posts) - 1; i >= 0; i-- {
		if match(f.posts[i]) {
			matched = append(matched, *f.posts[i])
		}
	}

	total := int64(len(matched))
	page, offset := db.ClampPage(page, total, db.DefaultPageSize)

	end := offset + db.DefaultPageSize
	if end > len(matched) {
		end = len(matched)
	}

	return &models.FeedPage{
		Posts:     matched[offset:end],
		Page:      page,
		PageCount: db.PageCount(total, db.DefaultPageSize),
		Total:     total,
	}, nil
}

func (f *fakePostRepo) GetAllPosts(page int) (*models.FeedPage, error) {
	return f.page(func(*models.Post) bool { return true }, page)
}

func (f *fakePostRepo) GetPostsByGroupID(groupID uint, page int) (*models.FeedPage, error) {
	return f.page(func(p *models.Post) bool { return p.GroupID != nil && *p.GroupID == groupID }, page)
}

func (f *fakePostRepo) GetPostsByUserID(userID uint, page int) (*models.FeedPage, error) {
	return f.page(func(p *models.Post) bool { return p.UserID == userID }, page)
}

func (f *fakePostRepo) CountPostsByUserID(userID uint) (int64, error) {
	var count int64
	for _, post := range f.posts {
		if post.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakePostRepo) GetFollowedPosts(userID uint, page int) (*models.FeedPage, error) {
	return f.page(func(p *models.Post) bool { return false }, page)
}

// fakeFeedPostRepo extends the plain fake with a follow graph so the
// follow feed can be exercised.
type fakeFeedPostRepo struct {
	*fakePostRepo
	follows *fakeFollowRepo
}

func (f *fakeFeedPostRepo) GetFollowedPosts(userID uint, page int) (*models.FeedPage, error) {
	return f.page(func(p *models.Post) bool {
		return f.follows.pairs[followPair{userID, p.UserID}]
	}, page)
}

type fakeGroupRepo struct {
	groups []*models.Group
}

func newFakeGroupRepo(groups ...*models.Group) *fakeGroupRepo {
	return &fakeGroupRepo{groups: groups}
}

func (f *fakeGroupRepo) FindGroupBySlug(slug string) (*models.Group, error) {
	for _, group := range f.groups {
		if group.Slug == slug {
			return group, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGroupRepo) FindGroupByID(id uint) (*models.Group, error) {
	for _, group := range f.groups {
		if group.ID == id {
			return group, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGroupRepo) GetAllGroups() ([]models.Group, error) {
	groups := make([]models.Group, 0, len(f.groups))
	for _, group := range f.groups {
		groups = append(groups, *group)
	}
	return groups, nil
}

type fakeCommentRepo struct {
	comments []*models.Comment
	nextID   uint
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{nextID: 1}
}

func (f *fakeCommentRepo) CreateComment(comment *models.Comment) error {
	comment.ID = f.nextID
	f.nextID++
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakeCommentRepo) GetCommentsByPostID(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	for _, comment := range f.comments {
		if comment.PostID == postID {
			comments = append(comments, *comment)
		}
	}
	return comments, nil
}
