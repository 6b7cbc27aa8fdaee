package normalize

// indianCities is the reference list for similarity matching. Former and
// current names both appear so that either spelling finds a close match; the
// exception table settles which one is canonical.
var indianCities = []string{
	"Mumbai", "Delhi", "Bengaluru", "Bangalore", "Hyderabad", "Ahmedabad", "Chennai", "Kolkata", "Surat", "Pune",
	"Jaipur", "Lucknow", "Kanpur", "Nagpur", "Indore", "Thane", "Bhopal", "Visakhapatnam", "Patna", "Vadodara",
	"Ghaziabad", "Ludhiana", "Agra", "Nashik", "Faridabad", "Meerut", "Rajkot", "Kalyan", "Vasai", "Srinagar",
	"Aurangabad", "Dhanbad", "Amritsar", "Navi Mumbai", "Allahabad", "Prayagraj", "Ranchi", "Howrah", "Coimbatore",
	"Jabalpur", "Gwalior", "Vijayawada", "Jodhpur", "Madurai", "Raipur", "Kota", "Chandigarh", "Guwahati",
	"Solapur", "Hubli", "Dharwad", "Bareilly", "Moradabad", "Mysuru", "Mysore", "Gurugram", "Gurgaon",
	"Aligarh", "Jalandhar", "Tiruchirappalli", "Bhubaneswar", "Salem", "Warangal", "Mira Bhayandar", "Thiruvananthapuram",
	"Trivandrum", "Bhiwandi", "Saharanpur", "Gorakhpur", "Bikaner", "Amravati", "Noida", "Jamshedpur", "Bhilai",
	"Cuttack", "Firozabad", "Kochi", "Ernakulam", "Nellore", "Bhavnagar", "Dehradun", "Durgapur", "Asansol",
	"Rourkela", "Nanded", "Kolhapur", "Ajmer", "Akola", "Gulbarga", "Belgaum", "Jamnagar", "Ujjain", "Loni",
	"Siliguri", "Jhansi", "Ulhasnagar", "Jammu", "Sangli", "Mangalore", "Erode", "Tirunelveli", "Muzaffarpur", "Udaipur",
	"Rohtak", "Karnal", "Panipat", "Rohini", "Dwarka", "Greater Noida",
}
