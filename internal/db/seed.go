package db

import (
	"fmt"

	"github.com/media-code-now/launchcheck-pro/internal/models"
	"gorm.io/gorm"
)

// seedItem is one task definition within a seed template. Order is derived
// from position.
type seedItem struct {
	Category    string
	Title       string
	Description string
	Priority    string
}

// seedTemplate describes a default checklist template.
type seedTemplate struct {
	Name        string
	Description string
	Type        string
	Items       []seedItem
}

// Seed inserts the default pre-launch and post-launch templates. Templates
// that already exist (by name) are left untouched, so Seed is idempotent.
// Returns the number of templates created.
func Seed(db *gorm.DB) (int, error) {
	created := 0
	for _, st := range defaultTemplates() {
		var count int64
		if err := db.Model(&models.ChecklistTemplate{}).Where("name = ?", st.Name).Count(&count).Error; err != nil {
			return created, fmt.Errorf("db: check template %q: %w", st.Name, err)
		}
		if count > 0 {
			continue
		}

		tmpl := models.ChecklistTemplate{
			ID:          models.NewID(),
			Name:        st.Name,
			Description: st.Description,
			Type:        st.Type,
			IsActive:    true,
		}
		for i, it := range st.Items {
			tmpl.Items = append(tmpl.Items, models.ChecklistItemTemplate{
				ID:          models.NewID(),
				Category:    it.Category,
				Title:       it.Title,
				Description: it.Description,
				Priority:    it.Priority,
				Order:       i + 1,
				IsActive:    true,
			})
		}
		if err := db.Create(&tmpl).Error; err != nil {
			return created, fmt.Errorf("db: seed template %q: %w", st.Name, err)
		}
		created++
	}
	return created, nil
}

// defaultTemplates returns the built-in pre-launch and post-launch checklists.
func defaultTemplates() []seedTemplate {
	return []seedTemplate{
		{
			Name:        "Default Pre Launch",
			Description: "Essential tasks to complete before your website goes live",
			Type:        models.TemplatePreLaunch,
			Items: []seedItem{
				{"Technical", "SSL Certificate Setup", "Configure HTTPS encryption and ensure all pages redirect properly", models.PriorityHigh},
				{"Technical", "Domain Configuration", "Set up DNS records and ensure domain points to production server", models.PriorityHigh},
				{"Technical", "Database Backup Strategy", "Implement automated database backups and test restoration process", models.PriorityHigh},
				{"Technical", "Error Pages Setup", "Create custom 404, 500 error pages and test error handling", models.PriorityMedium},
				{"Technical", "Form Validation Testing", "Test all contact forms, newsletters, and user input validation", models.PriorityMedium},
				{"SEO", "Meta Tags Optimization", "Add title tags, meta descriptions, and Open Graph tags to all pages", models.PriorityHigh},
				{"SEO", "XML Sitemap Generation", "Generate and submit XML sitemap to search engines", models.PriorityHigh},
				{"SEO", "Robots.txt Configuration", "Configure robots.txt file and ensure proper crawl directives", models.PriorityMedium},
				{"SEO", "Internal Linking Structure", "Optimize internal linking and ensure proper anchor text usage", models.PriorityMedium},
				{"SEO", "Schema Markup Implementation", "Add structured data markup for better search engine understanding", models.PriorityLow},
				{"Content", "Content Proofreading", "Review all website copy for grammar, spelling, and consistency", models.PriorityHigh},
				{"Content", "Image Optimization", "Compress images, add alt text, and ensure proper sizing", models.PriorityHigh},
				{"Content", "Legal Pages Creation", "Add Privacy Policy, Terms of Service, and Cookie Policy", models.PriorityHigh},
				{"Content", "Contact Information Verification", "Verify all contact details, addresses, and phone numbers are correct", models.PriorityMedium},
				{"Content", "Call-to-Action Optimization", "Review and optimize all CTAs for clarity and effectiveness", models.PriorityMedium},
				{"Analytics", "Google Analytics Setup", "Install GA4 tracking code and configure basic goals and events", models.PriorityHigh},
				{"Analytics", "Google Search Console Setup", "Verify website ownership and submit sitemap to Search Console", models.PriorityHigh},
				{"Analytics", "Conversion Tracking Setup", "Set up goal tracking for key conversion events (forms, purchases, etc.)", models.PriorityHigh},
				{"Analytics", "Heat Mapping Tool Installation", "Install tools like Hotjar or Crazy Egg for user behavior analysis", models.PriorityLow},
				{"Performance", "Page Speed Optimization", "Optimize loading times and achieve good Core Web Vitals scores", models.PriorityHigh},
				{"Performance", "CDN Configuration", "Set up Content Delivery Network for global performance optimization", models.PriorityMedium},
				{"Performance", "Caching Strategy Implementation", "Configure browser caching and server-side caching mechanisms", models.PriorityMedium},
				{"Performance", "Mobile Performance Testing", "Test website performance on various mobile devices and connections", models.PriorityHigh},
				{"UX", "Cross-Browser Testing", "Test website functionality across different browsers and versions", models.PriorityHigh},
				{"UX", "Mobile Responsiveness Check", "Verify proper display and functionality on all device sizes", models.PriorityHigh},
				{"UX", "Accessibility Audit", "Ensure WCAG compliance and test with screen readers", models.PriorityHigh},
				{"UX", "Navigation Testing", "Test all menu items, links, and user flow paths", models.PriorityMedium},
				{"UX", "User Acceptance Testing", "Conduct final testing with real users or stakeholders", models.PriorityMedium},
			},
		},
		{
			Name:        "Default Post Launch",
			Description: "Essential tasks to complete after your website goes live",
			Type:        models.TemplatePostLaunch,
			Items: []seedItem{
				{"Indexing", "Search Engine Indexing Check", "Verify that search engines are properly indexing your pages", models.PriorityHigh},
				{"Indexing", "Sitemap Submission Verification", "Confirm XML sitemap has been successfully submitted and processed", models.PriorityHigh},
				{"Indexing", "Search Console Coverage Report", "Review Google Search Console coverage report for any issues", models.PriorityMedium},
				{"Indexing", "Bing Webmaster Tools Setup", "Submit website to Bing Webmaster Tools and verify indexing", models.PriorityLow},
				{"Real user checks", "Contact Form Testing", "Test all contact forms with real submissions and verify delivery", models.PriorityHigh},
				{"Real user checks", "Newsletter Signup Verification", "Test newsletter signup process and email delivery", models.PriorityHigh},
				{"Real user checks", "E-commerce Transaction Testing", "Process test orders and verify payment processing (if applicable)", models.PriorityHigh},
				{"Real user checks", "User Registration Testing", "Test user account creation and login processes", models.PriorityMedium},
				{"Real user checks", "Social Media Integration Check", "Verify social media sharing and integration functionality", models.PriorityMedium},
				{"Analytics validation", "Google Analytics Data Verification", "Confirm GA4 is tracking visitors and events correctly", models.PriorityHigh},
				{"Analytics validation", "Conversion Goal Tracking Check", "Verify that conversion goals are firing properly", models.PriorityHigh},
				{"Analytics validation", "E-commerce Tracking Validation", "Confirm e-commerce events and revenue tracking (if applicable)", models.PriorityHigh},
				{"Analytics validation", "Traffic Source Attribution", "Verify proper tracking of traffic sources and campaigns", models.PriorityMedium},
				{"Analytics validation", "Custom Event Tracking Check", "Test any custom events and ensure proper data collection", models.PriorityMedium},
				{"Monitoring", "Uptime Monitoring Setup", "Configure uptime monitoring alerts for website availability", models.PriorityHigh},
				{"Monitoring", "Performance Monitoring Implementation", "Set up continuous performance monitoring and alerts", models.PriorityHigh},
				{"Monitoring", "Error Monitoring Configuration", "Configure error tracking and notification systems", models.PriorityHigh},
				{"Monitoring", "Security Monitoring Setup", "Implement security monitoring and vulnerability scanning", models.PriorityMedium},
				{"Monitoring", "Backup Verification", "Verify automated backups are working and test restoration process", models.PriorityHigh},
				{"SEO follow up", "Search Ranking Baseline Establishment", "Record initial search rankings for target keywords", models.PriorityMedium},
				{"SEO follow up", "Local SEO Optimization", "Set up Google My Business and local directory listings (if applicable)", models.PriorityMedium},
				{"SEO follow up", "Link Building Strategy Implementation", "Begin outreach for quality backlinks and partnerships", models.PriorityLow},
				{"SEO follow up", "Content Marketing Plan Execution", "Launch blog content calendar and content marketing initiatives", models.PriorityLow},
				{"SEO follow up", "Search Console Performance Review", "Monitor search performance and identify optimization opportunities", models.PriorityMedium},
			},
		},
	}
}
