package db

// Tables known to exist in the store. Template queries and the generative-backend
// prompt both assume this schema.
const (
	TableCustomers          = "customers"
	TablePurchases          = "purchases"
	TableSupport            = "support"
	TableMarketingCampaigns = "marketing_campaigns"
)

// Columns referenced by template queries.
const (
	ColumnPurchaseDate = "purchase_date"
	ColumnContactDate  = "contact_date"
	ColumnCategory     = "category"
	ColumnChannel      = "channel"
)

// SchemaDescription lists every known table with its columns, in the format used by the
// generative-backend prompt.
const SchemaDescription = `- customers(id, name, email, age, city, state, occupation, gender)
- purchases(id, customer_id, purchase_date, value, category, channel)
- support(id, customer_id, contact_date, contact_type, resolved, channel)
- marketing_campaigns(id, customer_id, campaign_name, sent_date, engaged, channel)`
