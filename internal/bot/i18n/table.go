package i18n

var table = map[MessageID]texts{
	MsgGenericError: {
		ru: "❌ Произошла ошибка. Попробуйте еще раз.",
		uz: "❌ Xatolik yuz berdi. Qaytadan urinib ko‘ring.",
	},
	MsgOperationFailed: {
		ru: "❌ Не удалось выполнить операцию. Попробуйте позже.",
		uz: "❌ Amalni bajarib bo‘lmadi. Keyinroq urinib ko‘ring.",
	},
	MsgInvalidFormat: {
		ru: "❌ Неверный формат данных",
		uz: "❌ Ma'lumot formati noto‘g‘ri",
	},
	MsgActionUnsupported: {
		ru: "⚠️ Это действие больше не поддерживается",
		uz: "⚠️ Bu amal endi qo‘llab-quvvatlanmaydi",
	},
	MsgUnknownCommand: {
		ru: "❓ Команда не распознана\n\n💡 Используйте кнопки меню или команды:\n• /help - справка\n• /start - главное меню\n• 🛍 Каталог - просмотр товаров",
		uz: "❓ Buyruq tanilmadi\n\n💡 Menyu tugmalaridan yoki komandlardan foydalaning:\n• /help - yordam\n• /start - bosh menyu\n• 🛍 Katalog - tovarlarni ko‘rish",
	},
	MsgRegisterPrompt: {
		ru: "👋 Добро пожаловать!\n\nДля использования бота необходимо пройти регистрацию.\n\nНажмите /start для начала.",
		uz: "👋 Xush kelibsiz!\n\nBotdan foydalanish uchun ro‘yxatdan o‘ting.\n\nBoshlash uchun /start ni bosing.",
	},
	MsgNotRegisteredCallback: {
		ru: "Сначала пройдите регистрацию: /start",
		uz: "Avval ro‘yxatdan o‘ting: /start",
	},
	MsgBanned: {
		ru: "🚫 Ваш доступ к магазину ограничен. Обратитесь в поддержку.",
		uz: "🚫 Do‘konga kirishingiz cheklangan. Yordam xizmatiga murojaat qiling.",
	},

	MsgWelcomeNew: {
		ru: "🛍 <b>Добро пожаловать в наш магазин!</b>\n\nДавайте познакомимся, это займет меньше минуты.",
		uz: "🛍 <b>Do‘konimizga xush kelibsiz!</b>\n\nKeling, tanishib olaylik, bu bir daqiqadan kam vaqt oladi.",
	},
	MsgWelcomeBack: {
		ru: "👋 С возвращением! Выберите раздел в меню ниже.",
		uz: "👋 Qaytganingizdan xursandmiz! Quyidagi menyudan bo‘limni tanlang.",
	},
	MsgAskName: {
		ru: "👤 Как вас зовут?",
		uz: "👤 Ismingiz nima?",
	},
	MsgNameTooShort: {
		ru: "❌ Имя слишком короткое. Попробуйте еще раз:",
		uz: "❌ Ism juda qisqa. Yana urinib ko‘ring:",
	},
	MsgAskPhone: {
		ru: "📱 Поделитесь номером телефона или пропустите этот шаг:",
		uz: "📱 Telefon raqamingizni ulashing yoki bu qadamni o‘tkazib yuboring:",
	},
	MsgInvalidPhone: {
		ru: "❌ Неверный формат телефона. Попробуйте еще раз:",
		uz: "❌ Telefon formati noto‘g‘ri. Yana urinib ko‘ring:",
	},
	MsgAskEmail: {
		ru: "📧 Введите email или пропустите:",
		uz: "📧 Email kiriting yoki o‘tkazib yuboring:",
	},
	MsgInvalidEmail: {
		ru: "❌ Неверный формат email. Попробуйте еще раз:",
		uz: "❌ Email formati noto‘g‘ri. Yana urinib ko‘ring:",
	},
	MsgAskLanguage: {
		ru: "🌍 Выберите язык / Tilni tanlang:",
		uz: "🌍 Выберите язык / Tilni tanlang:",
	},
	MsgPickLanguage: {
		ru: "❌ Выберите язык из предложенных вариантов:",
		uz: "❌ Taklif qilingan tillardan birini tanlang:",
	},
	MsgRegistrationCancelled: {
		ru: "❌ Регистрация отменена",
		uz: "❌ Ro‘yxatdan o‘tish bekor qilindi",
	},
	MsgRegistrationFailed: {
		ru: "❌ Ошибка регистрации. Попробуйте позже.",
		uz: "❌ Ro‘yxatdan o‘tishda xatolik. Keyinroq urinib ko‘ring.",
	},
	MsgRegistrationComplete: {
		ru: "✅ <b>Регистрация завершена!</b>\n\nТеперь вам доступны каталог, корзина и программа лояльности.",
		uz: "✅ <b>Ro‘yxatdan o‘tish yakunlandi!</b>\n\nEndi katalog, savat va sodiqlik dasturi sizga ochiq.",
	},
	MsgLanguageChanged: {
		ru: "✅ Язык изменен на русский",
		uz: "✅ Til o‘zbek tiliga o‘zgartirildi",
	},

	MsgHelp: {
		ru: "ℹ️ <b>Помощь</b>\n\n🛍 Каталог - просмотр товаров\n🛒 Корзина - ваши покупки\n📋 Мои заказы - история заказов\n👤 Профиль - данные и баллы\n🔍 Поиск - поиск по названию\n\n<b>Команды:</b>\n/start - главное меню\n/help - эта справка\n/notifications - уведомления\n/language - сменить язык\n/order_ID - детали заказа\n/promo_КОД - применить промокод",
		uz: "ℹ️ <b>Yordam</b>\n\n🛍 Katalog - tovarlarni ko‘rish\n🛒 Savat - xaridlaringiz\n📋 Mening buyurtmalarim - buyurtmalar tarixi\n👤 Profil - ma'lumotlar va ballar\n🔍 Qidiruv - nom bo‘yicha qidirish\n\n<b>Buyruqlar:</b>\n/start - bosh menyu\n/help - ushbu yordam\n/notifications - bildirishnomalar\n/language - tilni almashtirish\n/order_ID - buyurtma tafsilotlari\n/promo_KOD - promokodni qo‘llash",
	},
	MsgContact: {
		ru: "📞 <b>Связаться с нами</b>\n\n🏢 <b>Call-центр:</b>\n📱 %s\n\n💬 <b>Telegram поддержка:</b>\n👤 %s\n\n📧 Если у вас есть вопросы, свяжитесь с нами!\nМы всегда рады помочь! 🤝",
		uz: "📞 <b>Biz bilan bog'lanish</b>\n\n🏢 <b>Call-центр:</b>\n📱 %s\n\n💬 <b>Telegram yordam:</b>\n👤 %s\n\n📧 Savollaringiz bo'lsa, biz bilan bog'laning!\nBiz doimo yordam berishga tayyormiz! 🤝",
	},

	MsgCatalogTitle: {
		ru: "🛍 <b>Каталог товаров</b>\n\nВыберите категорию:",
		uz: "🛍 <b>Tovarlar katalogi</b>\n\nKategoriyani tanlang:",
	},
	MsgCatalogUnavailable: {
		ru: "❌ Каталог временно недоступен",
		uz: "❌ Katalog vaqtincha mavjud emas",
	},
	MsgChooseSubcategory: {
		ru: "📂 <b>%s</b>\n\nВыберите бренд или подкатегорию:",
		uz: "📂 <b>%s</b>\n\nBrend yoki subkategoriyani tanlang:",
	},
	MsgChooseProduct: {
		ru: "🛍 <b>%s</b>\n\nВыберите товар:",
		uz: "🛍 <b>%s</b>\n\nTovarni tanlang:",
	},
	MsgCategoryEmpty: {
		ru: "❌ В категории '%s' пока нет товаров",
		uz: "❌ '%s' kategoriyasida hozircha tovarlar yo‘q",
	},
	MsgSubcategoryEmpty: {
		ru: "❌ В подкатегории '%s' пока нет товаров",
		uz: "❌ '%s' subkategoriyasida hozircha tovarlar yo‘q",
	},
	MsgCategoryNotFound: {
		ru: "❌ Категория не найдена",
		uz: "❌ Kategoriya topilmadi",
	},
	MsgSubcategoryNotFound: {
		ru: "❌ Подкатегория не найдена",
		uz: "❌ Subkategoriya topilmadi",
	},
	MsgProductNotFound: {
		ru: "❌ Товар не найден",
		uz: "❌ Tovar topilmadi",
	},
	MsgProductPrice: {
		ru: "💰 Цена: <b>%s</b>",
		uz: "💰 Narxi: <b>%s</b>",
	},
	MsgProductStock: {
		ru: "📦 В наличии: %d шт.",
		uz: "📦 Omborda: %d dona",
	},
	MsgProductRating: {
		ru: "⭐ Рейтинг: %s (%.1f/5, %d отзывов)",
		uz: "⭐ Reyting: %s (%.1f/5, %d ta fikr)",
	},

	MsgCartEmpty: {
		ru: "🛒 Ваша корзина пуста\n\nПерейдите в каталог, чтобы добавить товары.",
		uz: "🛒 Savatingiz bo‘sh\n\nTovar qo‘shish uchun katalogga o‘ting.",
	},
	MsgCartTitle: {
		ru: "🛒 <b>Ваша корзина:</b>",
		uz: "🛒 <b>Savatingiz:</b>",
	},
	MsgCartLine: {
		ru: "🛍 <b>%s</b>\n💰 %s × %d = %s",
		uz: "🛍 <b>%s</b>\n💰 %s × %d = %s",
	},
	MsgCartTotal: {
		ru: "💳 <b>Итого: %s</b>",
		uz: "💳 <b>Jami: %s</b>",
	},
	MsgAddedToCart: {
		ru: "✅ <b>%s</b> добавлен в корзину (×%d)!",
		uz: "✅ <b>%s</b> savatga qo‘shildi (×%d)!",
	},
	MsgProductUnavailable: {
		ru: "❌ Товар недоступен или закончился",
		uz: "❌ Tovar mavjud emas yoki tugagan",
	},
	MsgMinQuantity: {
		ru: "❌ Минимальное количество: 1",
		uz: "❌ Minimal miqdor: 1",
	},
	MsgCartItemRemoved: {
		ru: "🗑 Товар удален из корзины",
		uz: "🗑 Tovar savatdan o‘chirildi",
	},
	MsgCartItemNotFound: {
		ru: "❌ Товар в корзине не найден",
		uz: "❌ Savatda tovar topilmadi",
	},
	MsgClearCartConfirm: {
		ru: "🗑 Очистить корзину? Все товары будут удалены.",
		uz: "🗑 Savatni tozalaysizmi? Barcha tovarlar o‘chiriladi.",
	},
	MsgClearCartPrompt: {
		ru: "Нажмите «✅ Да» или «❌ Нет».",
		uz: "«✅ Ha» yoki «❌ Yo'q» tugmasini bosing.",
	},
	MsgCartCleared: {
		ru: "🧹 Корзина очищена.",
		uz: "🧹 Savat tozalandi.",
	},
	MsgQuantityUnit: {
		ru: "%d шт.",
		uz: "%d dona",
	},

	MsgCheckoutSummary: {
		ru: "📦 <b>Оформление заказа</b>\n\n🛍 Товаров: %d\n💰 Сумма: %s\n\n📍 Введите адрес доставки или отправьте локацию:",
		uz: "📦 <b>Buyurtmani rasmiylashtirish</b>\n\n🛍 Tovarlar: %d\n💰 Summa: %s\n\n📍 Yetkazib berish manzilini kiriting yoki lokatsiyani yuboring:",
	},
	MsgAddressTooShort: {
		ru: "❌ Адрес слишком короткий. Введите полный адрес:",
		uz: "❌ Manzil juda qisqa. To‘liq manzilni yozing:",
	},
	MsgEnterAddress: {
		ru: "📝 Введите адрес доставки текстом (улица, дом, квартира):",
		uz: "📝 Yetkazib berish manzilini matn bilan kiriting (ko‘cha, uy, xonadon):",
	},
	MsgChoosePayment: {
		ru: "💳 Выберите способ оплаты:",
		uz: "💳 To‘lov usulini tanlang:",
	},
	MsgPickPayment: {
		ru: "❌ Выберите способ оплаты из предложенных",
		uz: "❌ Taklif qilingan to‘lov usulini tanlang",
	},
	MsgOrderCreated: {
		ru: "✅ <b>Заказ #%d оформлен!</b>\n\n💰 Сумма: %s\n📍 Адрес: %s\n💳 Оплата: %s\n⭐ Начислено баллов: %d",
		uz: "✅ <b>Buyurtma #%d rasmiylashtirildi!</b>\n\n💰 Summa: %s\n📍 Manzil: %s\n💳 To‘lov: %s\n⭐ Ballar qo‘shildi: %d",
	},
	MsgOrderDiscount: {
		ru: "🎁 Скидка: -%s",
		uz: "🎁 Chegirma: -%s",
	},
	MsgOrderCardFollowup: {
		ru: "📞 Мы свяжемся с вами в течение 10 минут для подтверждения оплаты картой",
		uz: "📞 Karta to‘lovi tasdig‘i uchun 10 daqiqada bog‘lanamiz",
	},
	MsgOrderCashFollowup: {
		ru: "📞 Мы свяжемся с вами в течение 10 минут",
		uz: "📞 10 daqiqa ichida siz bilan bogʻlanamiz",
	},
	MsgOrderFailed: {
		ru: "❌ Ошибка создания заказа. Попробуйте выбрать способ оплаты еще раз.",
		uz: "❌ Buyurtma yaratishda xatolik. To‘lov usulini qaytadan tanlang.",
	},
	MsgPaymentCancelled: {
		ru: "❌ Оплата отменена",
		uz: "❌ To‘lov bekor qilindi",
	},
	MsgCashPayment: {
		ru: "💵 <b>Оплата наличными</b>\n\nЗаказ #%d будет оплачен при получении.\n\n📞 Мы свяжемся с вами для подтверждения.",
		uz: "💵 <b>Naqd to‘lov</b>\n\n#%d buyurtma qabul qilishda to‘lanadi.\n\n📞 Tasdiqlash uchun siz bilan bog‘lanamiz.",
	},
	MsgCardPayment: {
		ru: "💳 <b>Оплата картой</b>\n\n📋 Заказ #%d\n💰 Сумма: %s\n🏷 Платеж: <code>%s</code>\n\n%s",
		uz: "💳 <b>Karta orqali to‘lov</b>\n\n📋 Buyurtma #%d\n💰 Summa: %s\n🏷 To‘lov: <code>%s</code>\n\n%s",
	},
	MsgPaymentFailed: {
		ru: "❌ Ошибка создания платежа",
		uz: "❌ To‘lov yaratishda xatolik",
	},

	MsgNoOrders: {
		ru: "📋 У вас пока нет заказов",
		uz: "📋 Hali buyurtmalar yo‘q",
	},
	MsgOrdersTitle: {
		ru: "📋 <b>Ваши заказы:</b>",
		uz: "📋 <b>Buyurtmalaringiz:</b>",
	},
	MsgOrderSummaryLine: {
		ru: "%s <b>Заказ #%d</b>\n💰 %s\n📅 %s\n📊 %s",
		uz: "%s <b>Buyurtma #%d</b>\n💰 %s\n📅 %s\n📊 %s",
	},
	MsgOrdersHint: {
		ru: "👆 Используйте /order_ID для деталей заказа",
		uz: "👆 Tafsilotlar uchun /order_ID ishlating",
	},
	MsgInvalidOrderNumber: {
		ru: "❌ Неверный номер заказа",
		uz: "❌ Buyurtma raqami noto‘g‘ri",
	},
	MsgOrderNotFound: {
		ru: "❌ Заказ #%d не найден",
		uz: "❌ #%d buyurtma topilmadi",
	},
	MsgOrderDetails: {
		ru: "📋 <b>Заказ #%d</b>\n\n📊 Статус: %s %s\n💰 Сумма: %s\n📅 Дата: %s\n📍 Адрес: %s\n💳 Оплата: %s",
		uz: "📋 <b>Buyurtma #%d</b>\n\n📊 Holat: %s %s\n💰 Summa: %s\n📅 Sana: %s\n📍 Manzil: %s\n💳 To‘lov: %s",
	},
	MsgOrderItemsHeader: {
		ru: "🛍 <b>Товары:</b>",
		uz: "🛍 <b>Tovarlar:</b>",
	},
	MsgOrderItemLine: {
		ru: "• %s × %d = %s",
		uz: "• %s × %d = %s",
	},
	MsgOrderCancelled: {
		ru: "✅ Заказ #%d отменен",
		uz: "✅ #%d buyurtma bekor qilindi",
	},
	MsgOrderNotCancellable: {
		ru: "❌ Этот заказ уже нельзя отменить",
		uz: "❌ Bu buyurtmani endi bekor qilib bo‘lmaydi",
	},
	MsgContactAboutOrder: {
		ru: "📞 По заказу #%d звоните %s или пишите %s",
		uz: "📞 #%d buyurtma bo‘yicha %s raqamiga qo‘ng‘iroq qiling yoki %s ga yozing",
	},

	MsgProfile: {
		ru: "👤 <b>Ваш профиль</b>\n\n📝 Имя: %s",
		uz: "👤 <b>Profilingiz</b>\n\n📝 Ism: %s",
	},
	MsgProfilePhone: {
		ru: "📱 Телефон: %s",
		uz: "📱 Telefon: %s",
	},
	MsgProfileEmail: {
		ru: "📧 Email: %s",
		uz: "📧 Email: %s",
	},
	MsgProfileStats: {
		ru: "🌍 Язык: %s\n📅 Регистрация: %s\n\n📊 <b>Статистика:</b>\n📦 Заказов: %d\n💰 Потрачено: %s",
		uz: "🌍 Til: %s\n📅 Roʻyxatdan o‘tgan sana: %s\n\n📊 <b>Statistika:</b>\n📦 Buyurtmalar: %d\n💰 Sarflangan: %s",
	},
	MsgProfileLastOrder: {
		ru: "📅 Последний заказ: %s",
		uz: "📅 Oxirgi buyurtma: %s",
	},
	MsgProfileLoyalty: {
		ru: "⭐ <b>Программа лояльности:</b>\n💎 Уровень: %s\n🏆 Баллов: %d\n\n🌍 Для смены языка: /language",
		uz: "⭐ <b>Sodiqlik dasturi:</b>\n💎 Daraja: %s\n🏆 Ballar: %d\n\n🌍 Tilni almashtirish: /language",
	},
	MsgLoyalty: {
		ru: "⭐ <b>Программа лояльности</b>\n\n💎 Ваш уровень: <b>%s</b>\n🏆 Текущие баллы: %d\n📊 Всего заработано: %d\n\n🏅 <b>Уровни лояльности:</b>",
		uz: "⭐ <b>Sodiqlik dasturi</b>\n\n💎 Darajangiz: <b>%s</b>\n🏆 Joriy ballar: %d\n📊 Jami yig‘ilgan: %d\n\n🏅 <b>Sodiqlik darajalari:</b>",
	},
	MsgLoyaltyTierLine: {
		ru: "%s %s (%d+ баллов) - %d%% скидка",
		uz: "%s %s (%d+ ball) - %d%% chegirma",
	},
	MsgLoyaltyFooter: {
		ru: "💡 Зарабатывайте 5% с каждой покупки!",
		uz: "💡 Har bir xariddan 5% ball to‘plang!",
	},

	MsgPromosTitle: {
		ru: "🎁 <b>Доступные промокоды:</b>",
		uz: "🎁 <b>Mavjud promokodlar:</b>",
	},
	MsgPromoLine: {
		ru: "🏷 <b>%s</b>\n💰 Скидка: %s",
		uz: "🏷 <b>%s</b>\n💰 Chegirma: %s",
	},
	MsgPromoMinimum: {
		ru: "📊 Минимальная сумма: %s",
		uz: "📊 Minimal summa: %s",
	},
	MsgPromoExpires: {
		ru: "⏰ Действует до: %s",
		uz: "⏰ Amal qilish muddati: %s",
	},
	MsgPromosFooter: {
		ru: "💡 Отправьте /promo_КОД перед оформлением заказа",
		uz: "💡 Buyurtma berishdan oldin /promo_KOD yuboring",
	},
	MsgNoPromos: {
		ru: "🎁 <b>Промокоды</b>\n\n❌ Нет доступных промокодов\n\n💡 Следите за акциями в нашем канале!",
		uz: "🎁 <b>Promokodlar</b>\n\n❌ Mavjud promokodlar yo‘q\n\n💡 Kanalimizdagi aksiyalarni kuzatib boring!",
	},
	MsgPromoApplied: {
		ru: "🎁 <b>Промокод применен!</b>\n\n🏷 Код: %s\n💰 Скидка: %s\n📊 Новая сумма: %s\n\n🛒 Оформите заказ чтобы зафиксировать скидку",
		uz: "🎁 <b>Promokod qo‘llandi!</b>\n\n🏷 Kod: %s\n💰 Chegirma: %s\n📊 Yangi summa: %s\n\n🛒 Chegirmani saqlash uchun buyurtma bering",
	},
	MsgPromoNeedsCart: {
		ru: "❌ Добавьте товары в корзину для применения промокода",
		uz: "❌ Promokodni qo‘llash uchun savatga tovar qo‘shing",
	},
	MsgPromoInvalid: {
		ru: "❌ Промокод не найден или неактивен",
		uz: "❌ Promokod topilmadi yoki faol emas",
	},
	MsgPromoExpired: {
		ru: "❌ Срок действия промокода истек",
		uz: "❌ Promokod muddati tugagan",
	},
	MsgPromoExhausted: {
		ru: "❌ Промокод больше не действует: лимит использований исчерпан",
		uz: "❌ Promokoddan foydalanish limiti tugagan",
	},
	MsgPromoMinimumNotMet: {
		ru: "❌ Сумма заказа меньше минимальной для этого промокода",
		uz: "❌ Buyurtma summasi ushbu promokod uchun minimaldan kam",
	},

	MsgSearchPrompt: {
		ru: "🔍 <b>Поиск товаров</b>\n\nВведите название товара для поиска:",
		uz: "🔍 <b>Tovar qidirish</b>\n\nQidiruv uchun nomni yozing:",
	},
	MsgSearchResults: {
		ru: "🔍 <b>Результаты поиска:</b> '%s'",
		uz: "🔍 <b>Qidiruv natijalari:</b> '%s'",
	},
	MsgSearchLine: {
		ru: "🛍 <b>%s</b>\n💰 %s",
		uz: "🛍 <b>%s</b>\n💰 %s",
	},
	MsgSearchMore: {
		ru: "... и еще %d товаров",
		uz: "... va yana %d ta tovar",
	},
	MsgSearchHint: {
		ru: "💡 Нажмите на название товара для подробностей",
		uz: "💡 Batafsil uchun tovar nomini bosing",
	},
	MsgSearchNothing: {
		ru: "❌ По запросу '%s' ничего не найдено\n\n💡 Попробуйте:\n• Изменить запрос\n• Использовать другие ключевые слова\n• Просмотреть каталог",
		uz: "❌ '%s' bo‘yicha hech narsa topilmadi\n\n💡 Qiling:\n• So‘rovni o‘zgartiring\n• Boshqa kalit so‘zlarni sinab ko‘ring\n• Katalogni ko‘ring",
	},
	MsgQuickSearch: {
		ru: "🔍 Найдено по запросу '%s':",
		uz: "🔍 '%s' bo‘yicha topildi:",
	},
	MsgQuickSearchHint: {
		ru: "💡 Используйте 🔍 Поиск для расширенного поиска",
		uz: "💡 Kengaytirilgan qidiruv uchun 🔍 Qidiruvdan foydalaning",
	},

	MsgNoNotifications: {
		ru: "🔔 У вас нет новых уведомлений",
		uz: "🔔 Yangi bildirishnomalar yo‘q",
	},

	MsgSellerStart: {
		ru: "🧑‍💼 <b>Заявка на продавца</b>\n\nВведите ваше имя:",
		uz: "🧑‍💼 <b>Sotuvchi bo‘lish uchun ariza</b>\n\nIsmingizni kiriting:",
	},
	MsgSellerAskPhone: {
		ru: "📱 Введите ваш номер телефона:",
		uz: "📱 Telefon raqamingizni kiriting:",
	},
	MsgSellerAskBrand: {
		ru: "🏷 Введите название бренда или магазина:",
		uz: "🏷 Brendingiz yoki do‘kon nomini kiriting:",
	},
	MsgSellerBrandTooShort: {
		ru: "❌ Название слишком короткое. Попробуйте еще раз:",
		uz: "❌ Nom juda qisqa. Yana urinib ko‘ring:",
	},
	MsgSellerAskProducts: {
		ru: "📦 Какие товары вы хотите продавать? Опишите коротко:",
		uz: "📦 Qaysi tovarlarni sotmoqchisiz? Qisqacha yozing:",
	},
	MsgSellerProductsTooShort: {
		ru: "❌ Опишите товары подробнее (минимум 10 символов):",
		uz: "❌ Tovarlarni batafsilroq yozing (kamida 10 belgi):",
	},
	MsgSellerSubmitted: {
		ru: "✅ <b>Ваша заявка отправлена!</b>\n\nМы рассмотрим ваши данные и свяжемся с вами в ближайшее время.",
		uz: "✅ <b>Arizangiz yuborildi!</b>\n\nBiz ma'lumotlaringizni ko‘rib chiqamiz va tez orada siz bilan bog‘lanamiz.",
	},
	MsgSellerCancelled: {
		ru: "❌ Заявка отменена",
		uz: "❌ Ariza bekor qilindi",
	},

	MsgFavoriteAdded: {
		ru: "❤️ %s добавлен в избранное!",
		uz: "❤️ %s sevimlilarga qo‘shildi!",
	},
	MsgFavoriteExists: {
		ru: "❤️ %s уже в избранном",
		uz: "❤️ %s allaqachon sevimlilarda",
	},
	MsgReviewsTitle: {
		ru: "⭐ <b>Отзывы о товаре:</b>\n%s",
		uz: "⭐ <b>Tovar haqidagi fikrlar:</b>\n%s",
	},
	MsgReviewsEmpty: {
		ru: "❌ Пока нет отзывов\n\n💡 Станьте первым, кто оставит отзыв!",
		uz: "❌ Hozircha fikrlar yo‘q\n\n💡 Birinchi bo‘lib fikr qoldiring!",
	},
	MsgReviewsMore: {
		ru: "... и еще %d отзывов",
		uz: "... va yana %d ta fikr",
	},
	MsgRatePrompt: {
		ru: "⭐ Оцените товар <b>%s</b>:",
		uz: "⭐ <b>%s</b> tovarini baholang:",
	},
	MsgRateOnlyPurchased: {
		ru: "❌ Вы можете оценивать только купленные товары",
		uz: "❌ Faqat sotib olingan tovarlarni baholash mumkin",
	},
	MsgRateThanks: {
		ru: "✅ Спасибо за оценку! %s",
		uz: "✅ Bahoingiz uchun rahmat! %s",
	},
	MsgRatingCancelled: {
		ru: "Оценка отменена",
		uz: "Baholash bekor qilindi",
	},

	MsgInvalidTrackNumber: {
		ru: "❌ Неверный формат трек-номера",
		uz: "❌ Trek-raqam formati noto‘g‘ri",
	},
	MsgTrackingUnavailable: {
		ru: "❌ Система отслеживания временно недоступна",
		uz: "❌ Kuzatish tizimi vaqtincha ishlamayapti",
	},
	MsgTrackingNotFound: {
		ru: "❌ Посылка с номером %s не найдена",
		uz: "❌ %s raqamli jo‘natma topilmadi",
	},
	MsgTracking: {
		ru: "📦 <b>Отслеживание посылки</b>\n\n🏷 Трек-номер: %s\n📊 Статус: %s\n\n📋 <b>История:</b>",
		uz: "📦 <b>Jo‘natmani kuzatish</b>\n\n🏷 Trek-raqam: %s\n📊 Holat: %s\n\n📋 <b>Tarix:</b>",
	},
	MsgRestore: {
		ru: "💾 <b>Восстановление заказа</b>\n\n🔍 ID для восстановления: %s\n\n💡 Функция восстановления будет добавлена в следующей версии",
		uz: "💾 <b>Buyurtmani tiklash</b>\n\n🔍 Tiklash uchun ID: %s\n\n💡 Tiklash funksiyasi keyingi versiyada qo‘shiladi",
	},
	MsgInvalidRestoreID: {
		ru: "❌ Неверный ID для восстановления",
		uz: "❌ Tiklash uchun ID noto‘g‘ri",
	},

	MsgOrderStatusChanged: {
		ru: "📋 Статус заказа #%d: %s %s",
		uz: "📋 #%d buyurtma holati: %s %s",
	},
	MsgAdminNewOrder: {
		ru: "🆕 <b>Новый заказ #%d</b>\n\n👤 %s\n💰 %s\n📍 %s\n💳 %s",
		uz: "🆕 <b>Yangi buyurtma #%d</b>\n\n👤 %s\n💰 %s\n📍 %s\n💳 %s",
	},
	MsgAdminNewCategory: {
		ru: "📂 Добавлена категория: %s",
		uz: "📂 Kategoriya qo‘shildi: %s",
	},
	MsgWelcomeNotificationTitle: {
		ru: "Добро пожаловать!",
		uz: "Xush kelibsiz!",
	},
	MsgWelcomeNotificationBody: {
		ru: "%s, спасибо за регистрацию! Получайте 5%% баллами с каждой покупки.",
		uz: "%s, ro‘yxatdan o‘tganingiz uchun rahmat! Har bir xariddan 5%% ball oling.",
	},
	MsgOrderNotificationTitle: {
		ru: "Заказ #%d принят",
		uz: "#%d buyurtma qabul qilindi",
	},
	MsgOrderNotificationBody: {
		ru: "Сумма заказа: %s. Мы сообщим об изменении статуса.",
		uz: "Buyurtma summasi: %s. Holat o‘zgarishi haqida xabar beramiz.",
	},
	MsgStatusNotificationTitle: {
		ru: "Заказ #%d",
		uz: "Buyurtma #%d",
	},

	MsgStatusPending: {
		ru: "Ожидает подтверждения",
		uz: "Tasdiqlash kutilmoqda",
	},
	MsgStatusConfirmed: {
		ru: "Подтвержден",
		uz: "Tasdiqlandi",
	},
	MsgStatusShipped: {
		ru: "Отправлен",
		uz: "Jo‘natildi",
	},
	MsgStatusDelivered: {
		ru: "Доставлен",
		uz: "Yetkazildi",
	},
	MsgStatusCancelled: {
		ru: "Отменен",
		uz: "Bekor qilindi",
	},
}
