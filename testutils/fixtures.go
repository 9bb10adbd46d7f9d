package testutils

// LeaderboardQueryID is the public "top Farcaster users by followers" query.
const LeaderboardQueryID = 3224138

type LeaderboardRow struct {
	Rank      int    `json:"rank"`
	Username  string `json:"username"`
	Followers int    `json:"followers"`
}

// LeaderboardResults is a trimmed copy of a completed results response for
// LeaderboardQueryID, with the same field shapes the live API returns.
const LeaderboardResults = `{
  "execution_id": "01HKZSJAW6N2MFVCBHA3R8S64X",
  "query_id": 3224138,
  "is_execution_finished": true,
  "state": "QUERY_STATE_COMPLETED",
  "submitted_at": "2024-01-12T21:34:37.447476Z",
  "expires_at": "2024-04-11T21:34:55.737082Z",
  "execution_started_at": "2024-01-12T21:34:37.464387Z",
  "execution_ended_at": "2024-01-12T21:34:55.737081Z",
  "result": {
    "rows": [
      {"followers": 457915, "rank": 1, "username": "dwr.eth"},
      {"followers": 437106, "rank": 2, "username": "vitalik.eth"},
      {"followers": 381904, "rank": 3, "username": "v"},
      {"followers": 201234, "rank": 4, "username": "jessepollak"}
    ],
    "metadata": {
      "column_names": ["rank", "username", "followers"],
      "row_count": 4,
      "result_set_bytes": 188,
      "total_row_count": 100,
      "datapoint_count": 12,
      "pending_time_millis": 17,
      "execution_time_millis": 18272
    }
  }
}`
