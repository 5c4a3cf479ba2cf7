package calendar

import (
	"context"
	"fmt"
	"time"

	tokenRepo "superlife/database/repository/token"
	"superlife/models"
	"superlife/services/availability"
	"superlife/utils"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	providerKey = "google-calendar"
	tokenType   = "oauth"
)

// Config carries the Google OAuth client settings and the operating timezone.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	CalendarID   string // "primary" when unset
	Timezone     string
}

// GoogleCalendarService implements CalendarService against the Google
// Calendar v3 API, with OAuth tokens persisted through the token repository.
type GoogleCalendarService struct {
	Tokens tokenRepo.TokenRepository
	Cfg    Config
}

// NewGoogleCalendarService constructs the production calendar collaborator.
func NewGoogleCalendarService(tokens tokenRepo.TokenRepository, cfg Config) *GoogleCalendarService {
	return &GoogleCalendarService{Tokens: tokens, Cfg: cfg}
}

func (s *GoogleCalendarService) calendarID() string {
	if s.Cfg.CalendarID == "" {
		return "primary"
	}
	return s.Cfg.CalendarID
}

func (s *GoogleCalendarService) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.Cfg.ClientID,
		ClientSecret: s.Cfg.ClientSecret,
		RedirectURL:  s.Cfg.RedirectURI,
		Scopes:       []string{gcal.CalendarScope, gcal.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}
}

// AuthURL builds the consent URL for the OAuth connect flow. Offline access
// with forced approval guarantees a refresh token comes back.
func (s *GoogleCalendarService) AuthURL(state string) string {
	return s.oauthConfig().AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// ExchangeCode trades the OAuth callback code for tokens and persists them.
func (s *GoogleCalendarService) ExchangeCode(ctx context.Context, code string) error {
	token, err := s.oauthConfig().Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("oauth code exchange failed: %w", err)
	}
	return s.persistToken(ctx, token)
}

// Connected reports whether a usable refresh token is stored.
func (s *GoogleCalendarService) Connected(ctx context.Context) (bool, error) {
	row, err := s.Tokens.Get(ctx, providerKey, tokenType)
	if err != nil {
		return false, err
	}
	return row != nil && row.RefreshToken != "", nil
}

// FetchBusyWindows queries freebusy for the local day of the given date and
// projects every busy period onto minutes since local midnight.
func (s *GoogleCalendarService) FetchBusyWindows(ctx context.Context, date string) ([]availability.Interval, error) {
	svc, err := s.service(ctx)
	if err != nil {
		return nil, err
	}

	dayStart, err := availability.ZonedTimeToInstant(date, "00:00:00", s.Cfg.Timezone)
	if err != nil {
		return nil, err
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	req := &gcal.FreeBusyRequest{
		TimeMin:  dayStart.Format(time.RFC3339),
		TimeMax:  dayEnd.Format(time.RFC3339),
		TimeZone: s.Cfg.Timezone,
		Items:    []*gcal.FreeBusyRequestItem{{Id: s.calendarID()}},
	}

	resp, err := svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("freebusy query failed: %w", err)
	}

	cal, ok := resp.Calendars[s.calendarID()]
	if !ok {
		return []availability.Interval{}, nil
	}

	windows := make([]availability.Interval, 0, len(cal.Busy))
	for _, period := range cal.Busy {
		start, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			return nil, fmt.Errorf("unparsable busy period start %q: %w", period.Start, err)
		}
		end, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			return nil, fmt.Errorf("unparsable busy period end %q: %w", period.End, err)
		}

		startMin, err := availability.InstantToZonedMinutes(start, date, s.Cfg.Timezone)
		if err != nil {
			return nil, err
		}
		endMin, err := availability.InstantToZonedMinutes(end, date, s.Cfg.Timezone)
		if err != nil {
			return nil, err
		}
		windows = append(windows, availability.Interval{Start: startMin, End: endMin})
	}

	return windows, nil
}

// CreateEvent inserts the booking event and returns its id.
func (s *GoogleCalendarService) CreateEvent(ctx context.Context, input EventInput) (string, error) {
	svc, err := s.service(ctx)
	if err != nil {
		return "", err
	}

	event, err := svc.Events.Insert(s.calendarID(), s.buildEvent(input)).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("calendar event insert failed: %w", err)
	}
	return event.Id, nil
}

// UpdateEvent patches an existing event in place.
func (s *GoogleCalendarService) UpdateEvent(ctx context.Context, eventID string, input EventInput) error {
	svc, err := s.service(ctx)
	if err != nil {
		return err
	}

	if _, err := svc.Events.Patch(s.calendarID(), eventID, s.buildEvent(input)).Context(ctx).Do(); err != nil {
		return fmt.Errorf("calendar event patch failed: %w", err)
	}
	return nil
}

// DeleteEvent removes an event, e.g. when a booking is cancelled.
func (s *GoogleCalendarService) DeleteEvent(ctx context.Context, eventID string) error {
	svc, err := s.service(ctx)
	if err != nil {
		return err
	}

	if err := svc.Events.Delete(s.calendarID(), eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("calendar event delete failed: %w", err)
	}
	return nil
}

func (s *GoogleCalendarService) buildEvent(input EventInput) *gcal.Event {
	tz := input.Timezone
	if tz == "" {
		tz = s.Cfg.Timezone
	}

	event := &gcal.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Start:       &gcal.EventDateTime{DateTime: input.Start, TimeZone: tz},
		End:         &gcal.EventDateTime{DateTime: input.End, TimeZone: tz},
	}
	for _, a := range input.Attendees {
		event.Attendees = append(event.Attendees, &gcal.EventAttendee{
			Email:       a.Email,
			DisplayName: a.DisplayName,
		})
	}
	if len(input.Metadata) > 0 {
		event.ExtendedProperties = &gcal.EventExtendedProperties{Private: input.Metadata}
	}
	return event
}

// service builds an authenticated Calendar client from the stored credential.
// A missing refresh token is an error, never an empty calendar: the caller's
// fail-closed contract depends on it.
func (s *GoogleCalendarService) service(ctx context.Context) (*gcal.Service, error) {
	row, err := s.Tokens.Get(ctx, providerKey, tokenType)
	if err != nil {
		return nil, fmt.Errorf("calendar token lookup failed: %w", err)
	}
	if row == nil || row.RefreshToken == "" {
		return nil, fmt.Errorf("google calendar is not connected: missing refresh token")
	}

	stored := &oauth2.Token{
		AccessToken:  row.AccessToken,
		RefreshToken: row.RefreshToken,
		Expiry:       row.ExpiresAt,
	}
	source := s.oauthConfig().TokenSource(ctx, stored)

	svc, err := gcal.NewService(ctx, option.WithTokenSource(&persistingTokenSource{
		inner:  source,
		last:   stored,
		tokens: s.Tokens,
	}))
	if err != nil {
		return nil, fmt.Errorf("calendar client init failed: %w", err)
	}
	return svc, nil
}

func (s *GoogleCalendarService) persistToken(ctx context.Context, token *oauth2.Token) error {
	row, err := s.Tokens.Get(ctx, providerKey, tokenType)
	if err != nil {
		return err
	}

	next := models.IntegrationToken{
		Provider:     providerKey,
		TokenType:    tokenType,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry,
	}
	if row != nil {
		next.ID = row.ID
		next.CreatedAt = row.CreatedAt
		// Google omits the refresh token on re-consent; keep the stored one.
		if next.RefreshToken == "" {
			next.RefreshToken = row.RefreshToken
		}
	}
	return s.Tokens.Upsert(ctx, next)
}

// persistingTokenSource writes refreshed access tokens back to the store so
// the next process start does not re-refresh unnecessarily.
type persistingTokenSource struct {
	inner  oauth2.TokenSource
	last   *oauth2.Token
	tokens tokenRepo.TokenRepository
}

func (p *persistingTokenSource) Token() (*oauth2.Token, error) {
	token, err := p.inner.Token()
	if err != nil {
		return nil, err
	}

	if token.AccessToken != p.last.AccessToken {
		refresh := token.RefreshToken
		if refresh == "" {
			refresh = p.last.RefreshToken
		}
		p.last = token
		update := models.IntegrationToken{
			Provider:     providerKey,
			TokenType:    tokenType,
			AccessToken:  token.AccessToken,
			RefreshToken: refresh,
			ExpiresAt:    token.Expiry,
		}
		if err := p.tokens.Upsert(context.Background(), update); err != nil {
			utils.GetLogger().Error("failed to persist refreshed calendar token", zap.Error(err))
		}
	}
	return token, nil
}
