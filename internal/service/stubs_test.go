package service

import (
	"context"
	"time"

	"ripple/internal/models"
	"ripple/internal/repository"
)

type followRepoStub struct {
	followFn             func(context.Context, uint, uint) error
	unfollowFn           func(context.Context, uint, uint) error
	isFollowingFn        func(context.Context, uint, uint) (bool, error)
	followingProfilesFn  func(context.Context, uint) ([]uint, error)
	followerProfilesFn   func(context.Context, uint) ([]uint, error)
	followingOwnersFn    func(context.Context, uint) ([]uint, error)
	followerOwnersFn     func(context.Context, uint) ([]uint, error)
	followingUsernamesFn func(context.Context, uint) ([]string, error)
	followerUsernamesFn  func(context.Context, uint) ([]string, error)
	countsFn             func(context.Context, uint) (int64, int64, error)
}

func (s *followRepoStub) Follow(ctx context.Context, follower, followee uint) error {
	return s.followFn(ctx, follower, followee)
}
func (s *followRepoStub) Unfollow(ctx context.Context, follower, followee uint) error {
	return s.unfollowFn(ctx, follower, followee)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, follower, followee uint) (bool, error) {
	return s.isFollowingFn(ctx, follower, followee)
}
func (s *followRepoStub) FollowingProfileIDs(ctx context.Context, profileID uint) ([]uint, error) {
	return s.followingProfilesFn(ctx, profileID)
}
func (s *followRepoStub) FollowerProfileIDs(ctx context.Context, profileID uint) ([]uint, error) {
	return s.followerProfilesFn(ctx, profileID)
}
func (s *followRepoStub) FollowingOwnerIDs(ctx context.Context, profileID uint) ([]uint, error) {
	return s.followingOwnersFn(ctx, profileID)
}
func (s *followRepoStub) FollowerOwnerIDs(ctx context.Context, profileID uint) ([]uint, error) {
	return s.followerOwnersFn(ctx, profileID)
}
func (s *followRepoStub) FollowingUsernames(ctx context.Context, profileID uint) ([]string, error) {
	return s.followingUsernamesFn(ctx, profileID)
}
func (s *followRepoStub) FollowerUsernames(ctx context.Context, profileID uint) ([]string, error) {
	return s.followerUsernamesFn(ctx, profileID)
}
func (s *followRepoStub) Counts(ctx context.Context, profileID uint) (int64, int64, error) {
	return s.countsFn(ctx, profileID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		followFn:             func(context.Context, uint, uint) error { return nil },
		unfollowFn:           func(context.Context, uint, uint) error { return nil },
		isFollowingFn:        func(context.Context, uint, uint) (bool, error) { return false, nil },
		followingProfilesFn:  func(context.Context, uint) ([]uint, error) { return nil, nil },
		followerProfilesFn:   func(context.Context, uint) ([]uint, error) { return nil, nil },
		followingOwnersFn:    func(context.Context, uint) ([]uint, error) { return nil, nil },
		followerOwnersFn:     func(context.Context, uint) ([]uint, error) { return nil, nil },
		followingUsernamesFn: func(context.Context, uint) ([]string, error) { return nil, nil },
		followerUsernamesFn:  func(context.Context, uint) ([]string, error) { return nil, nil },
		countsFn:             func(context.Context, uint) (int64, int64, error) { return 0, 0, nil },
	}
}

type profileRepoStub struct {
	createFn        func(context.Context, *models.Profile) error
	getByIDFn       func(context.Context, uint) (*models.Profile, error)
	getByUserIDFn   func(context.Context, uint) (*models.Profile, error)
	updateFn        func(context.Context, *models.Profile) error
	addSocialLinkFn func(context.Context, uint, string, string) error
	listVisibleFn   func(context.Context, uint, uint, repository.ProfileFilters, int, int) ([]models.Profile, error)
}

func (s *profileRepoStub) Create(ctx context.Context, profile *models.Profile) error {
	return s.createFn(ctx, profile)
}
func (s *profileRepoStub) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	return s.getByIDFn(ctx, id)
}
func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) Update(ctx context.Context, profile *models.Profile) error {
	return s.updateFn(ctx, profile)
}
func (s *profileRepoStub) AddSocialLink(ctx context.Context, profileID uint, platform, url string) error {
	return s.addSocialLinkFn(ctx, profileID, platform, url)
}
func (s *profileRepoStub) ListVisible(ctx context.Context, requesterProfileID, requesterUserID uint, f repository.ProfileFilters, limit, offset int) ([]models.Profile, error) {
	return s.listVisibleFn(ctx, requesterProfileID, requesterUserID, f, limit, offset)
}

// noopProfileRepo maps user N to profile N+100 so tests can tell user
// and profile IDs apart.
func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		createFn: func(context.Context, *models.Profile) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Profile, error) {
			return &models.Profile{ID: id, UserID: id - 100}, nil
		},
		getByUserIDFn: func(_ context.Context, userID uint) (*models.Profile, error) {
			return &models.Profile{ID: userID + 100, UserID: userID}, nil
		},
		updateFn:        func(context.Context, *models.Profile) error { return nil },
		addSocialLinkFn: func(context.Context, uint, string, string) error { return nil },
		listVisibleFn: func(context.Context, uint, uint, repository.ProfileFilters, int, int) ([]models.Profile, error) {
			return nil, nil
		},
	}
}

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
	listFn          func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		listFn:          func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

type postRepoStub struct {
	createFn       func(context.Context, *models.Post) error
	getByIDFn      func(context.Context, uint, uint) (*models.Post, error)
	updateFn       func(context.Context, *models.Post) error
	deleteFn       func(context.Context, uint) error
	listVisibleFn  func(context.Context, uint, uint, repository.PostFilters, int, int) ([]*models.Post, error)
	likeFn         func(context.Context, uint, uint) error
	unlikeFn       func(context.Context, uint, uint) error
	isLikedFn      func(context.Context, uint, uint) (bool, error)
	titlesByUserFn func(context.Context, uint) ([]string, error)
	publishDueFn   func(context.Context, time.Time) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) ListVisible(ctx context.Context, requesterUserID, requesterProfileID uint, f repository.PostFilters, limit, offset int) ([]*models.Post, error) {
	return s.listVisibleFn(ctx, requesterUserID, requesterProfileID, f, limit, offset)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}
func (s *postRepoStub) TitlesByUser(ctx context.Context, userID uint) ([]string, error) {
	return s.titlesByUserFn(ctx, userID)
}
func (s *postRepoStub) PublishDue(ctx context.Context, today time.Time) (int64, error) {
	return s.publishDueFn(ctx, today)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(context.Context, *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Post, error) {
			return &models.Post{ID: id, Published: true}, nil
		},
		updateFn: func(context.Context, *models.Post) error { return nil },
		deleteFn: func(context.Context, uint) error { return nil },
		listVisibleFn: func(context.Context, uint, uint, repository.PostFilters, int, int) ([]*models.Post, error) {
			return nil, nil
		},
		likeFn:         func(context.Context, uint, uint) error { return nil },
		unlikeFn:       func(context.Context, uint, uint) error { return nil },
		isLikedFn:      func(context.Context, uint, uint) (bool, error) { return false, nil },
		titlesByUserFn: func(context.Context, uint) ([]string, error) { return nil, nil },
		publishDueFn:   func(context.Context, time.Time) (int64, error) { return 0, nil },
	}
}

type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	getByIDFn     func(context.Context, uint) (*models.Comment, error)
	deleteFn      func(context.Context, uint) error
	listForPostFn func(context.Context, uint, int, int) ([]models.Comment, error)
	listVisibleFn func(context.Context, uint, uint, repository.CommentFilters, int, int) ([]models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) ListForPost(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, error) {
	return s.listForPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) ListVisible(ctx context.Context, requesterUserID, requesterProfileID uint, f repository.CommentFilters, limit, offset int) ([]models.Comment, error) {
	return s.listVisibleFn(ctx, requesterUserID, requesterProfileID, f, limit, offset)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:  func(context.Context, *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		deleteFn:  func(context.Context, uint) error { return nil },
		listForPostFn: func(context.Context, uint, int, int) ([]models.Comment, error) {
			return nil, nil
		},
		listVisibleFn: func(context.Context, uint, uint, repository.CommentFilters, int, int) ([]models.Comment, error) {
			return nil, nil
		},
	}
}
