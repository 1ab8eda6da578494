package memory

import (
	"interview-scorecard-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// InterviewRepository is the process-wide session store. Entries never expire:
// explicit termination through the admin surface is the only deletion path, so
// the cache is created with NoExpiration and no janitor.
type InterviewRepository struct {
	cache *cache.Cache
}

func NewInterviewRepository() *InterviewRepository {
	c := cache.New(cache.NoExpiration, 0)
	return &InterviewRepository{
		cache: c,
	}
}

func (r *InterviewRepository) Save(interview *entity.Interview) {
	r.cache.Set(interview.Id, interview, cache.NoExpiration)
}

func (r *InterviewRepository) Get(interviewId string) (*entity.Interview, bool) {
	if x, found := r.cache.Get(interviewId); found {
		return x.(*entity.Interview), true
	}
	return nil, false
}

// Delete removes the session and reports whether it existed.
func (r *InterviewRepository) Delete(interviewId string) bool {
	if _, found := r.cache.Get(interviewId); !found {
		return false
	}
	r.cache.Delete(interviewId)
	return true
}

// ListAll returns every stored document. Order is not significant to callers.
func (r *InterviewRepository) ListAll() []*entity.Interview {
	items := r.cache.Items()
	out := make([]*entity.Interview, 0, len(items))
	for _, item := range items {
		out = append(out, item.Object.(*entity.Interview))
	}
	return out
}

func (r *InterviewRepository) Count() int {
	return r.cache.ItemCount()
}
