// Package github fetches contribution calendars from the GitHub GraphQL
// API and flattens them into date-keyed counts.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tableflip.dev/contribgraph/pkg/contributions"
	"tableflip.dev/contribgraph/pkg/timeutil"
)

// DefaultEndpoint is the public GitHub GraphQL endpoint.
const DefaultEndpoint = "https://api.github.com/graphql"

// The API serves the trailing year by default when no range is given.
const contributionsQuery = `query($login: String!) {
  user(login: $login) {
    contributionsCollection {
      contributionCalendar {
        weeks {
          contributionDays {
            date
            contributionCount
          }
        }
      }
    }
  }
}`

// Client talks to the GitHub GraphQL API. The zero value is not usable;
// construct one with NewClient.
type Client struct {
	Endpoint   string
	Token      string
	HTTPClient *http.Client
}

// NewClient returns a client for the public API. The token may be empty,
// in which case no Authorization header is sent.
func NewClient(token string) *Client {
	return &Client{
		Endpoint:   DefaultEndpoint,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type graphQLRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

type contributionDay struct {
	Date              string `json:"date"`
	ContributionCount int    `json:"contributionCount"`
}

type graphQLResponse struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					Weeks []struct {
						ContributionDays []contributionDay `json:"contributionDays"`
					} `json:"weeks"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// ContributionCalendar fetches the rolling one-year contribution calendar
// for a single account. Any deviation from the expected response shape is
// an error; no partial calendar is returned.
func (c *Client) ContributionCalendar(ctx context.Context, account string) (contributions.Calendar, error) {
	body, err := json.Marshal(graphQLRequest{
		Query:     contributionsQuery,
		Variables: map[string]string{"login": account},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", c.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s from %s", resp.Status, c.Endpoint)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var gr graphQLResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(gr.Errors) > 0 {
		return nil, fmt.Errorf("graphql error: %s", gr.Errors[0].Message)
	}
	if gr.Data.User == nil {
		return nil, fmt.Errorf("no such user %q", account)
	}

	calendar := contributions.Calendar{}
	for _, week := range gr.Data.User.ContributionsCollection.ContributionCalendar.Weeks {
		for _, day := range week.ContributionDays {
			if _, err := timeutil.ParseDate(day.Date); err != nil {
				return nil, fmt.Errorf("malformed contribution day: %w", err)
			}
			calendar[day.Date] = day.ContributionCount
		}
	}
	return calendar, nil
}
