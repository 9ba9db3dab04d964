package repository

import "legalease-rag/models"

// sampleLegalCases is the demonstration corpus served when no external case
// database is available.
var sampleLegalCases = []models.LocalCase{
	{
		Title:       "State of Maharashtra vs. Ram Kumar",
		Facts:       "Property dispute involving agricultural land ownership rights between two parties. The dispute arose when defendant claimed ownership of 5 acres of agricultural land.",
		Judgment:    "Court ruled in favor of plaintiff based on registered sale deed and property documents. Defendant failed to provide sufficient evidence of ownership.",
		LegalIssues: "Property rights, land ownership verification, documentary evidence",
		Court:       "Bombay High Court",
		Year:        "2023",
		Citation:    "2023 BHC 456",
	},
	{
		Title:       "ABC Corporation vs. XYZ Limited",
		Facts:       "Breach of supply contract where defendant failed to deliver goods as per agreed timeline. Contract worth Rs. 50 lakhs was violated.",
		Judgment:    "Court awarded compensation of Rs. 15 lakhs for breach of contract and additional damages for delayed delivery.",
		LegalIssues: "Contract law, breach of contract, damages, specific performance",
		Court:       "Delhi High Court",
		Year:        "2023",
		Citation:    "2023 DHC 789",
	},
	{
		Title:       "Priya Sharma vs. Tech Solutions Pvt Ltd",
		Facts:       "Wrongful termination case where employee was dismissed without proper notice or cause after 3 years of service.",
		Judgment:    "Employee awarded reinstatement with 80% back wages. Company directed to follow proper termination procedures.",
		LegalIssues: "Employment law, wrongful termination, industrial disputes, back wages",
		Court:       "Karnataka High Court",
		Year:        "2023",
		Citation:    "2023 KHC 234",
	},
	{
		Title:       "Union Bank vs. Rajesh Enterprises",
		Facts:       "Recovery suit for non-payment of loan amount of Rs. 25 lakhs with interest. Borrower defaulted on EMI payments.",
		Judgment:    "Court directed immediate recovery of principal amount with 12% interest. Asset attachment ordered.",
		LegalIssues: "Banking law, loan recovery, interest calculation, asset attachment",
		Court:       "Punjab & Haryana High Court",
		Year:        "2023",
		Citation:    "2023 PHC 567",
	},
	{
		Title:       "Municipal Corporation vs. Green Builders",
		Facts:       "Unauthorized construction case where builder constructed additional floors without proper permissions.",
		Judgment:    "Demolition ordered for unauthorized portion. Builder fined Rs. 10 lakhs for violation of building norms.",
		LegalIssues: "Municipal law, building regulations, unauthorized construction, penalties",
		Court:       "Gujarat High Court",
		Year:        "2023",
		Citation:    "2023 GHC 345",
	},
	{
		Title:       "Sunita Devi vs. State of UP",
		Facts:       "Consumer protection case against defective electronic goods sold without proper warranty coverage.",
		Judgment:    "Consumer forum awarded replacement of product plus Rs. 5000 compensation for mental agony.",
		LegalIssues: "Consumer protection, defective goods, warranty claims, compensation",
		Court:       "Allahabad High Court",
		Year:        "2023",
		Citation:    "2023 AHC 678",
	},
	{
		Title:       "Highway Construction Co. vs. State Government",
		Facts:       "Dispute over delayed payment for government road construction project worth Rs. 2 crores.",
		Judgment:    "Government directed to release pending payment with 8% interest within 60 days.",
		LegalIssues: "Government contracts, delayed payments, public works, interest on dues",
		Court:       "Rajasthan High Court",
		Year:        "2023",
		Citation:    "2023 RHC 890",
	},
	{
		Title:       "Dr. Amit vs. Medical Council",
		Facts:       "Professional misconduct case against doctor for alleged negligence in patient treatment.",
		Judgment:    "Doctor suspended for 6 months. Directed to undergo refresher training before resuming practice.",
		LegalIssues: "Medical negligence, professional conduct, medical council regulations",
		Court:       "Supreme Court of India",
		Year:        "2023",
		Citation:    "2023 SC 123",
	},
}
