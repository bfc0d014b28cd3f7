package domain

// Status of a contribution as derived from the review worksheet.
type Status string

const (
	StatusReviewed Status = "reviewed"
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
)

// Contribution is the canonical record reconciled into the posts collection.
// (Author, Permlink) is the natural key; reconciliation never creates a second
// document for an existing pair.
type Contribution struct {
	Author       string     `bson:"author" json:"author"`
	Permlink     string     `bson:"permlink" json:"permlink"`
	PostCategory string     `bson:"post_category" json:"post_category"`
	Moderator    Moderator  `bson:"moderator" json:"moderator"`
	Repository   Repository `bson:"repository" json:"repository"`
	Score        float64    `bson:"score" json:"score"`
	Status       Status     `bson:"status" json:"status"`
	Category     string     `bson:"category" json:"category"`
	Tags         []string   `bson:"tags" json:"tags"`
	Created      string     `bson:"created" json:"created"`
	Body         string     `bson:"body" json:"body"`
	Vote         *Vote      `bson:"utopian_vote" json:"utopian_vote"`
	StaffPick    *StaffPick `bson:"staff_pick,omitempty" json:"staff_pick,omitempty"`
}

type Moderator struct {
	Account    string `bson:"account" json:"account"`
	ReviewDate string `bson:"date" json:"date"` // ISO-8601 or empty
}

type Repository struct {
	FullName string `bson:"full_name" json:"full_name"`
	HTMLURL  string `bson:"html_url" json:"html_url"`
}

// StaffPick is present only when the worksheet flags the row as picked.
type StaffPick struct {
	PickedBy string `bson:"picked_by" json:"picked_by"`
	Date     string `bson:"date" json:"date"`
}

// Vote is the curator's vote on a post, taken from the post's active vote list.
type Vote struct {
	Voter   string `bson:"voter" json:"voter"`
	Weight  int64  `bson:"weight" json:"weight"`
	Percent int    `bson:"percent" json:"percent"`
	Rshares int64  `bson:"rshares" json:"rshares"`
	Time    string `bson:"time" json:"time"`
}

// PostContent is the content-lookup result for one (author, permlink) pair.
type PostContent struct {
	Created string
	Body    string
	Tags    []string
	Votes   []Vote
}

// VoteBy returns the vote cast by the given account, or nil. The vote list is
// small and unordered, so this is a plain scan.
func (p *PostContent) VoteBy(account string) *Vote {
	for i := range p.Votes {
		if p.Votes[i].Voter == account {
			return &p.Votes[i]
		}
	}
	return nil
}

// BannedUser is a read-only projection from the "Banned users" worksheet. It is
// never written back to the store.
type BannedUser struct {
	Account     string `json:"account"`
	IsBanned    bool   `json:"is_banned"`
	BannedSince string `json:"banned_since"` // ISO-8601 or empty
	BannedUntil string `json:"banned_until"` // BannedSince + ban duration, or empty
	BannedBy    string `json:"banned_by"`
	Reason      string `json:"reason"`
}
