package fixtures

import (
	"time"

	model "bidstar/internal/models"
	"bidstar/internal/trial"
)

// Seed data standing in for the future backend API. Auction and trial
// times are anchored to the given reference time so the derived statuses
// come out as one live, one upcoming and one ended auction.

// Artists returns the seed artist profiles.
func Artists(now time.Time, trialSettings trial.Settings) []model.Artist {
	amaraTrial := trial.Refresh(model.TrialInfo{
		TrialStartDate: now.Add(-5 * 24 * time.Hour),
		TrialEndDate:   now.Add(15 * 24 * time.Hour),
		PostsUsed:      5,
		MaxPosts:       trialSettings.MaxPosts,
	}, now)

	thaboTrial := trial.Refresh(model.TrialInfo{
		TrialStartDate: now.Add(-12 * 24 * time.Hour),
		TrialEndDate:   now.Add(8 * 24 * time.Hour),
		PostsUsed:      2,
		MaxPosts:       trialSettings.MaxPosts,
	}, now)

	kezaTrial := trial.Refresh(model.TrialInfo{
		TrialStartDate: now.Add(-25 * 24 * time.Hour),
		TrialEndDate:   now.Add(-5 * 24 * time.Hour),
		PostsUsed:      18,
		MaxPosts:       trialSettings.MaxPosts,
	}, now)

	return []model.Artist{
		{
			ArtistID: "1",
			Name:     "Amara Soul",
			Email:    "amara@bidstar.app",
			Bio:      "Afrobeat sensation from Lagos, blending traditional rhythms with modern production.",
			Genres:   []string{"Afrobeat", "R&B", "Soul"},
			Location: "Lagos, Nigeria",
			ProfileImage: "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=400",
			MusicSamples: []model.MusicSample{
				{SampleID: "1", Title: "Midnight Groove", Duration: 180, URL: "sample1.mp3", Genre: "Afrobeat"},
				{SampleID: "2", Title: "City Lights", Duration: 210, URL: "sample2.mp3", Genre: "R&B"},
			},
			MusicPosts: []model.MusicPost{
				{PostID: "p1", Title: "Midnight Groove", Genre: "Afrobeat", Duration: 180, UploadDate: now.Add(-4 * 24 * time.Hour), Likes: 120, Plays: 890},
				{PostID: "p2", Title: "City Lights", Genre: "R&B", Duration: 210, UploadDate: now.Add(-3 * 24 * time.Hour), Likes: 95, Plays: 640},
				{PostID: "p3", Title: "Lagos Nights", Genre: "Afrobeat", Duration: 200, UploadDate: now.Add(-2 * 24 * time.Hour), Likes: 64, Plays: 410},
				{PostID: "p4", Title: "Harmattan", Genre: "Soul", Duration: 230, UploadDate: now.Add(-36 * time.Hour), Likes: 41, Plays: 260},
				{PostID: "p5", Title: "Golden Hour", Genre: "Soul", Duration: 190, UploadDate: now.Add(-12 * time.Hour), Likes: 18, Plays: 130},
			},
			SocialMedia: model.SocialMedia{Instagram: "@amarasoul", Twitter: "@amarasoul_music"},
			Verified:    true,
			Rating:      4.8,
			TotalBids:   23,
			JoinDate:    amaraTrial.TrialStartDate,
			TrialInfo:   amaraTrial,
		},
		{
			ArtistID: "2",
			Name:     "Thabo Beats",
			Email:    "thabo@bidstar.app",
			Bio:      "Hip-hop producer and rapper from Johannesburg, creating conscious music for the youth.",
			Genres:   []string{"Hip-Hop", "Rap", "Amapiano"},
			Location: "Johannesburg, South Africa",
			ProfileImage: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400",
			MusicSamples: []model.MusicSample{
				{SampleID: "3", Title: "Street Dreams", Duration: 195, URL: "sample3.mp3", Genre: "Hip-Hop"},
			},
			MusicPosts: []model.MusicPost{
				{PostID: "p6", Title: "Street Dreams", Genre: "Hip-Hop", Duration: 195, UploadDate: now.Add(-10 * 24 * time.Hour), Likes: 77, Plays: 520},
				{PostID: "p7", Title: "Jozi Flow", Genre: "Amapiano", Duration: 205, UploadDate: now.Add(-6 * 24 * time.Hour), Likes: 52, Plays: 340},
			},
			SocialMedia: model.SocialMedia{Instagram: "@thabobeats", YouTube: "ThaboBeatsOfficial"},
			Verified:    false,
			Rating:      4.5,
			TotalBids:   12,
			JoinDate:    thaboTrial.TrialStartDate,
			TrialInfo:   thaboTrial,
		},
		{
			ArtistID: "3",
			Name:     "Keza Voice",
			Email:    "keza@bidstar.app",
			Bio:      "Soulful vocalist from Kigali, specializing in contemporary African music with jazz influences.",
			Genres:   []string{"Jazz", "Soul", "African Contemporary"},
			Location: "Kigali, Rwanda",
			ProfileImage: "https://images.unsplash.com/photo-1598488035139-bdbb2231ce04?w=400",
			MusicSamples: []model.MusicSample{
				{SampleID: "4", Title: "Mountain Echoes", Duration: 240, URL: "sample4.mp3", Genre: "Jazz"},
			},
			MusicPosts: []model.MusicPost{},
			Verified:   true,
			Rating:     4.9,
			TotalBids:  31,
			JoinDate:   kezaTrial.TrialStartDate,
			TrialInfo:  kezaTrial,
		},
	}
}

// Labels returns the seed record labels.
func Labels() []model.RecordLabel {
	return []model.RecordLabel{
		{
			LabelID:     "1",
			Name:        "Afro Fusion Records",
			Email:       "contact@afrofusionrecords.com",
			Description: "Leading African music label specializing in contemporary Afrobeat and fusion genres.",
			Logo:        "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=200",
			Website:     "www.afrofusionrecords.com",
			Genres:      []string{"Afrobeat", "Fusion", "World Music"},
			Location:    "Cape Town, South Africa",
			Established: "2018",
			Verified:    true,
		},
		{
			LabelID:     "2",
			Name:        "Urban Pulse Entertainment",
			Email:       "hello@urbanpulse.co.ke",
			Description: "Hip-hop and urban music powerhouse discovering the next generation of African talent.",
			Genres:      []string{"Hip-Hop", "Rap", "Urban", "Amapiano"},
			Location:    "Nairobi, Kenya",
			Established: "2020",
			Verified:    true,
		},
	}
}

// Auctions returns the seed auctions: one live, one upcoming, one ended
// (won by Afro Fusion Records).
func Auctions(now time.Time) []model.Auction {
	return []model.Auction{
		{
			AuctionID:   "1",
			ArtistID:    "1",
			Title:       "Exclusive Recording Contract - Amara Soul",
			Description: "3-album deal with international distribution rights",
			StartTime:   now.Add(-1 * time.Hour),
			EndTime:     now.Add(2 * time.Hour),
			StartingBid: 5000,
			CurrentBid:  12500,
			BidCount:    8,
			EntryFee:    1,
		},
		{
			AuctionID:   "2",
			ArtistID:    "2",
			Title:       "Hip-Hop Talent Showcase - Thabo Beats",
			Description: "Single release with promotional support",
			StartTime:   now.Add(22 * time.Hour),
			EndTime:     now.Add(24 * time.Hour),
			StartingBid: 2000,
			CurrentBid:  2000,
			BidCount:    0,
			EntryFee:    1,
		},
		{
			AuctionID:     "3",
			ArtistID:      "3",
			Title:         "Jazz Fusion Project - Keza Voice",
			Description:   "EP production with studio time included",
			StartTime:     now.Add(-28 * time.Hour),
			EndTime:       now.Add(-26 * time.Hour),
			StartingBid:   3500,
			CurrentBid:    8750,
			BidCount:      12,
			EntryFee:      1,
			WinnerLabelID: "1",
		},
	}
}
