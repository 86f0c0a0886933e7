package analytics

import (
	"context"
	"time"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// slowCutoff is what a dashboard would call a degraded response. It is
// well below the injector's first phase threshold so the ramp-up shows
// early.
const slowCutoff = time.Second

type Analytics struct {
	redis *redis.Client
}

func NewAnalytics(r *redis.Client) *Analytics {
	return &Analytics{redis: r}
}

// RecordRequest increments the per-shopper counters for one request.
func (a *Analytics) RecordRequest(ctx context.Context, shopper, path string, duration time.Duration, statusCode int) error {
	reqKey := "store:req:" + shopper + ":" + path
	a.redis.Incr(ctx, reqKey)

	latKey := "store:lat:" + shopper + ":" + path
	a.redis.Set(ctx, latKey, int(duration.Milliseconds()), time.Hour)

	if duration >= slowCutoff {
		slowKey := "store:slow:" + shopper + ":" + path
		a.redis.Incr(ctx, slowKey)
	}

	if statusCode >= 400 {
		errKey := "store:err:" + shopper + ":" + path
		a.redis.Incr(ctx, errKey)
	}

	return nil
}

// FetchShopperAnalytics returns per-path request/slow/error counts for
// one shopper.
func (a *Analytics) FetchShopperAnalytics(ctx context.Context, shopper string) (map[string]map[string]int, error) {
	result := make(map[string]map[string]int)

	pattern := "store:req:" + shopper + ":*"
	keys, err := a.redis.Keys(ctx, pattern).Result()
	if err != nil {
		return nil, err
	}

	prefix := len("store:req:" + shopper + ":")
	for _, k := range keys {
		path := k[prefix:]
		val, _ := a.redis.Get(ctx, k).Result()
		count, _ := strconv.Atoi(val)
		if result[path] == nil {
			result[path] = make(map[string]int)
		}
		result[path]["requests"] = count

		slowVal, _ := a.redis.Get(ctx, "store:slow:"+shopper+":"+path).Result()
		slowCount, _ := strconv.Atoi(slowVal)
		result[path]["slow"] = slowCount

		errVal, _ := a.redis.Get(ctx, "store:err:"+shopper+":"+path).Result()
		errCount, _ := strconv.Atoi(errVal)
		result[path]["errors"] = errCount
	}

	return result, nil
}
