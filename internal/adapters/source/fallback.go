package source

// FallbackCSV is the bundled sample (January 2024 to January 2025, eight essential items)
// served whenever the configured source cannot be loaded.
const FallbackCSV = `Tarih,Pirinç,Ekmek,Dana Eti (Taze),Süt,Tavuk Yumurtası,Ayçiçek Yağı,Benzin,Elektrik Ücreti (Fatura)
01/01/2024,84.85,59.72,573.86,52.61,5.28,85.68,26.94,56.26
01/02/2024,86.35,69.14,580.97,59.73,5.64,85.39,33.27,62.28
01/03/2024,105.43,74.97,608.42,51.58,5.68,85.40,35.26,59.23
01/04/2024,113.17,75.40,639.99,55.34,5.67,89.57,37.42,52.61
01/05/2024,113.94,75.75,642.73,56.58,5.68,89.56,36.67,59.15
01/06/2024,127.23,76.65,697.35,61.39,5.72,92.23,35.95,57.89
01/07/2024,124.15,77.80,747.42,61.36,5.74,93.15,37.64,59.15
01/08/2024,126.96,78.26,769.67,59.36,5.74,92.62,37.42,59.15
01/09/2024,124.56,78.65,762.88,57.98,5.74,92.62,38.17,59.49
01/10/2024,122.02,78.85,765.82,58.59,5.74,94.52,38.29,62.28
01/11/2024,106.34,79.03,790.12,61.98,5.74,103.62,37.07,73.67
01/12/2024,109.94,79.05,791.76,59.62,5.89,109.18,37.64,76.39
01/01/2025,111.93,79.21,813.60,58.29,6.03,107.03,32.43,87.51
`
