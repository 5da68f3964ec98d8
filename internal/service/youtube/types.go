package youtube

import "time"

// Token is the google token endpoint response for both the code exchange and
// the refresh grant.
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope"`
}

// Expiry converts the relative expires_in into an absolute timestamp.
func (t *Token) Expiry(now time.Time) *time.Time {
	if t.ExpiresIn == 0 {
		return nil
	}
	expiry := now.Add(time.Duration(t.ExpiresIn) * time.Second)
	return &expiry
}

// ChannelSnippet is the subset of a channels.list item the dashboard stores.
type ChannelSnippet struct {
	ID        string
	Title     string
	Thumbnail string
}

type reportResponse struct {
	Rows [][]interface{} `json:"rows"`
}

type channelListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title      string `json:"title"`
			Thumbnails struct {
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

type searchListResponse struct {
	PageInfo struct {
		TotalResults int64 `json:"totalResults"`
	} `json:"pageInfo"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func cellString(cell interface{}) string {
	s, _ := cell.(string)
	return s
}

// cellFloat treats missing and null cells as zero, the upstream omits values
// for days it has not finalized yet.
func cellFloat(cell interface{}) float64 {
	f, _ := cell.(float64)
	return f
}

func cellInt(cell interface{}) int64 {
	return int64(cellFloat(cell))
}

func cell(row []interface{}, i int) interface{} {
	if i >= len(row) {
		return nil
	}
	return row[i]
}
